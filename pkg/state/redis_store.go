package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edea-dev/msweb/pkg/msmodel"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix            = "msweb:state:"
	projectsSuffix       = ":projects"
	specificationsSuffix = ":specifications"
)

// RedisStore shares state between msweb instances. Each list is a single JSON
// value so a replace is one SET.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func ConnectRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("unable to reach redis at %s: %w", addr, err)
	}

	return NewRedisStore(client), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Projects(ctx context.Context, user string) ([]msmodel.Project, error) {
	projects := []msmodel.Project{}
	if err := s.get(ctx, projectsKey(user), &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (s *RedisStore) ReplaceProjects(ctx context.Context, user string, projects []msmodel.Project) error {
	if projects == nil {
		projects = []msmodel.Project{}
	}

	return s.set(ctx, projectsKey(user), projects)
}

func (s *RedisStore) Specifications(ctx context.Context, user string) ([]msmodel.Specification, error) {
	specs := []msmodel.Specification{}
	if err := s.get(ctx, specificationsKey(user), &specs); err != nil {
		return nil, err
	}

	return specs, nil
}

func (s *RedisStore) ReplaceSpecifications(ctx context.Context, user string, specs []msmodel.Specification) error {
	if specs == nil {
		specs = []msmodel.Specification{}
	}

	return s.set(ctx, specificationsKey(user), specs)
}

func (s *RedisStore) get(ctx context.Context, key string, out any) error {
	val, err := s.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil
	case err != nil:
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(val, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return nil
}

func (s *RedisStore) set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, b, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

func projectsKey(user string) string {
	return keyPrefix + user + projectsSuffix
}

func specificationsKey(user string) string {
	return keyPrefix + user + specificationsSuffix
}
