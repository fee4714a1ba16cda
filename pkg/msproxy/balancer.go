package msproxy

import (
	"net/url"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Balancer implements middleware.ProxyBalancer for echo, handing out the backend
// targets round robin.
type Balancer struct {
	mu      sync.Mutex
	targets []*middleware.ProxyTarget
	next    int
}

func NewBalancer(urls []*url.URL) *Balancer {
	b := &Balancer{}
	for _, u := range urls {
		b.AddTarget(&middleware.ProxyTarget{Name: u.String(), URL: u})
	}

	return b
}

// AddTarget adds t unless a target with the same name already exists.
func (b *Balancer) AddTarget(t *middleware.ProxyTarget) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.targets {
		if existing.Name == t.Name {
			return false
		}
	}

	b.targets = append(b.targets, t)
	return true
}

func (b *Balancer) RemoveTarget(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, t := range b.targets {
		if t.Name == name {
			b.targets = append(b.targets[:i], b.targets[i+1:]...)
			return true
		}
	}

	return false
}

func (b *Balancer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.targets)
}

// Next returns the next target, or nil when there are none. The request's Host is
// switched to the target's so virtual hosted backends answer.
func (b *Balancer) Next(c echo.Context) *middleware.ProxyTarget {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.targets) == 0 {
		return nil
	}

	if b.next >= len(b.targets) {
		b.next = 0
	}

	t := b.targets[b.next]
	b.next++

	if c != nil {
		c.Request().Host = t.URL.Host
	}

	return t
}
