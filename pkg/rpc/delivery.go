package rpc

import (
	"context"
	"sync"
	"time"
)

// Completion receives the single outcome of a call: either a value and a nil
// error, or the zero value and a non-nil error.
type Completion[T any] func(T, error)

// Call runs req on the pipeline's worker queue and hands the decoded result
// to done exactly once, on a queue goroutine rather than the caller's.
// Callers that need delivery on a particular goroutine must hop themselves.
// A closed pipeline rejects req with ErrClosed and still reports it to the
// observer.
func Call[T any](ctx context.Context, p *Pipeline, req Request, done Completion[T]) {
	if done == nil {
		done = func(T, error) {}
	}
	accepted := p.queue.Go(func() {
		var out T
		if err := p.Execute(ctx, req, &out); err != nil {
			var zero T
			done(zero, err)
			return
		}
		done(out, nil)
	})
	if !accepted {
		p.record(req.Method, time.Now(), ErrClosed)
		var zero T
		go done(zero, ErrClosed)
	}
}

// CallFuture is the future form of Call. The future settles with exactly the
// value or error Call would have delivered.
func CallFuture[T any](ctx context.Context, p *Pipeline, req Request) *Future[T] {
	return NewFuture(func(done Completion[T]) {
		Call(ctx, p, req, done)
	})
}

// Future holds the eventual outcome of an asynchronous call. It settles once;
// later settlement attempts are ignored.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// NewFuture creates a future and passes its settle function to start.
func NewFuture[T any](start func(Completion[T])) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	start(f.settle)
	return f
}

func (f *Future[T]) settle(v T, err error) {
	f.once.Do(func() {
		if err != nil {
			var zero T
			v = zero
		}
		f.value, f.err = v, err
		close(f.done)
	})
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx ends. Giving up on ctx does not
// cancel the underlying call; the future still settles later.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then invokes done with the outcome once the future settles, on its own
// goroutine.
func (f *Future[T]) Then(done Completion[T]) {
	go func() {
		<-f.done
		done(f.value, f.err)
	}()
}
