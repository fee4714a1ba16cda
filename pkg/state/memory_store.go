package state

import (
	"context"
	"sync"

	"github.com/edea-dev/msweb/pkg/msmodel"
)

type userState struct {
	projects       []msmodel.Project
	specifications []msmodel.Specification
}

// MemoryStore keeps state in process. It starts empty.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*userState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*userState)}
}

func (s *MemoryStore) Projects(_ context.Context, user string) ([]msmodel.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if us, ok := s.users[user]; ok {
		return append([]msmodel.Project{}, us.projects...), nil
	}

	return []msmodel.Project{}, nil
}

func (s *MemoryStore) ReplaceProjects(_ context.Context, user string, projects []msmodel.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userState(user).projects = append([]msmodel.Project{}, projects...)
	return nil
}

func (s *MemoryStore) Specifications(_ context.Context, user string) ([]msmodel.Specification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if us, ok := s.users[user]; ok {
		return append([]msmodel.Specification{}, us.specifications...), nil
	}

	return []msmodel.Specification{}, nil
}

func (s *MemoryStore) ReplaceSpecifications(_ context.Context, user string, specs []msmodel.Specification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userState(user).specifications = append([]msmodel.Specification{}, specs...)
	return nil
}

// userState must be called with mu held for writing.
func (s *MemoryStore) userState(user string) *userState {
	us, ok := s.users[user]
	if !ok {
		us = &userState{}
		s.users[user] = us
	}

	return us
}
