package pages

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/edea-dev/msweb/pkg/msapi"
)

// Deferred is a field value still being fetched. It is started when it is created.
type Deferred struct {
	done  chan struct{}
	value any
	err   error
}

func Defer(ctx context.Context, fn func(ctx context.Context) (any, error)) *Deferred {
	d := &Deferred{done: make(chan struct{})}

	go func() {
		defer close(d.done)
		defer func() {
			if r := recover(); r != nil {
				d.err = fmt.Errorf("deferred field panicked: %v", r)
			}
		}()

		d.value, d.err = fn(ctx)
	}()

	return d
}

// Resolved returns a Deferred that is already done.
func Resolved(value any, err error) *Deferred {
	d := &Deferred{done: make(chan struct{}), value: value, err: err}
	close(d.done)
	return d
}

func (d *Deferred) Done() <-chan struct{} {
	return d.done
}

func (d *Deferred) Result() (any, error) {
	<-d.done
	return d.value, d.err
}

// deferGet fetches path as T in the background. Each onResolve hook runs with the
// value once the fetch succeeds.
func deferGet[T any](ev *Event, path string, onResolve ...func(T)) *Deferred {
	header := ev.Header()
	return Defer(ev.Ctx, func(ctx context.Context) (any, error) {
		value, err := msapi.GetJSON[T](ctx, ev.Fetch, path, header)
		if err != nil {
			return nil, err
		}
		value = emptyIfNil(value)

		for _, hook := range onResolve {
			hook(value)
		}

		return value, nil
	})
}

func getJSON[T any](ev *Event, path string) (T, error) {
	value, err := msapi.GetJSON[T](ev.Ctx, ev.Fetch, path, ev.Header())
	return emptyIfNil(value), err
}

// emptyIfNil turns a nil slice, as decoded from a null body, into an empty one so
// lists always render as [].
func emptyIfNil[T any](value T) T {
	v := reflect.ValueOf(&value).Elem()
	if v.Kind() == reflect.Slice && v.IsNil() {
		v.Set(reflect.MakeSlice(v.Type(), 0, 0))
	}

	return value
}

func badRequest(format string, args ...any) error {
	return &StatusError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}
