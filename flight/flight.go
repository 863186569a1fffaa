package flight

import (
	"context"

	"github.com/karupanerura/lazyload"
)

// Flight is a handle of a fetch shared by every caller that asked for it.
type Flight[V lazyload.ValueConstraint] struct {
	done   chan struct{}
	cloner lazyload.ValueCloner[V]

	// written once before done is closed
	data []V
	err  error
}

func newFlight[V lazyload.ValueConstraint](cloner lazyload.ValueCloner[V]) *Flight[V] {
	return &Flight[V]{
		done:   make(chan struct{}),
		cloner: cloner,
	}
}

// Done returns a channel that is closed when the fetch is settled.
func (f *Flight[V]) Done() <-chan struct{} {
	return f.done
}

// Wait waits for the fetch to settle and returns a copy of its data.
// A settled flight returns right away even if the context is already done.
// If the context is done first, it returns the context error, but the fetch keeps running.
func (f *Flight[V]) Wait(ctx context.Context) ([]V, error) {
	select {
	case <-f.done:
	default:
		select {
		case <-f.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if f.err != nil {
		return nil, f.err
	}
	return lazyload.CloneSlice(f.cloner, f.data), nil
}

// settle stores the result and wakes every waiter.
// It must be called exactly once.
func (f *Flight[V]) settle(data []V, err error) {
	f.data = data
	f.err = err
	close(f.done)
}
