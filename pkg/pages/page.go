// Package pages builds the data each route renders. A loader runs against an Event
// and returns a Page whose fields are either resolved values or Deferred fetches the
// web layer waits on (or streams) after the loader returns.
package pages

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/url"

	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/msmodel"
	"github.com/edea-dev/msweb/pkg/state"
)

// Event is what a loader gets to work with for one page load.
type Event struct {
	Ctx      context.Context
	Fetch    msapi.Requester
	Identity msmodel.Identity
	Params   map[string]string
	Query    url.Values
	State    state.Store
}

func (ev *Event) Param(name string) string {
	return ev.Params[name]
}

// Header is attached to every backend request made on behalf of the caller.
func (ev *Event) Header() http.Header {
	return ev.Identity.Header()
}

type Loader func(ev *Event) (*Page, error)

// StatusError fails a load without asking the backend, e.g. for a missing parameter.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

type Page struct {
	Data     map[string]any
	Deferred map[string]*Deferred

	shadowed []*Deferred
}

func NewPage() *Page {
	return &Page{Data: make(map[string]any), Deferred: make(map[string]*Deferred)}
}

func (p *Page) Set(key string, value any) *Page {
	p.Data[key] = value
	return p
}

func (p *Page) Defer(key string, d *Deferred) *Page {
	p.Deferred[key] = d
	return p
}

// Merge adds the fields of other that p doesn't already have. Deferred fields of
// other that lose to a field of p are still waited on by Settle.
func (p *Page) Merge(other *Page) *Page {
	for key, value := range other.Data {
		if _, ok := p.field(key); !ok {
			p.Data[key] = value
		}
	}

	for key, d := range other.Deferred {
		if _, ok := p.field(key); !ok {
			p.Deferred[key] = d
		} else {
			p.shadowed = append(p.shadowed, d)
		}
	}

	return p
}

func (p *Page) field(key string) (any, bool) {
	if v, ok := p.Data[key]; ok {
		return v, true
	}

	d, ok := p.Deferred[key]
	return d, ok
}

// Resolve waits for the deferred fields in the order they finish and returns every
// field as one map. It returns as soon as a field fails; the caller should then
// cancel the load's context and Settle the page.
func (p *Page) Resolve() (map[string]any, error) {
	data := make(map[string]any, len(p.Data)+len(p.Deferred))
	for key, value := range p.Data {
		data[key] = value
	}

	for key, d := range p.Finished() {
		value, err := d.Result()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		data[key] = value
	}

	return data, nil
}

// Finished yields the deferred fields as they complete. Stopping early leaves no
// goroutine blocked.
func (p *Page) Finished() iter.Seq2[string, *Deferred] {
	return func(yield func(string, *Deferred) bool) {
		finished := make(chan string, len(p.Deferred))
		for key, d := range p.Deferred {
			go func() {
				<-d.Done()
				finished <- key
			}()
		}

		for range len(p.Deferred) {
			key := <-finished
			if !yield(key, p.Deferred[key]) {
				return
			}
		}
	}
}

// Settle blocks until every deferred field has finished.
func (p *Page) Settle() {
	for _, d := range p.Deferred {
		<-d.Done()
	}

	for _, d := range p.shadowed {
		<-d.Done()
	}
}
