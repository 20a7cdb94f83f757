package proxy

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
)

// Future resolves exactly once, to a value or a failure.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) resolve(val T, err error) {
	f.val, f.err = val, err
	close(f.done)
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until the future resolves or ctx ends. Giving up waiting
// does not stop the operation.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, apperr.Transient("caller stopped waiting", ctx.Err())
	}
}
