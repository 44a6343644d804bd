// Package async delivers results after an artificial delay, emulating a
// remote round-trip for in-process data.
package async

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrPending is returned by Result while the operation is still in flight.
var ErrPending = errors.New("async: result pending")

// Deferred is the pending result of an operation started with Run.
type Deferred[T any] struct {
	done   chan struct{}
	once   sync.Once
	cancel context.CancelFunc

	val T
	err error
}

// Run schedules fn to execute once delay has elapsed and returns immediately.
//
// Cancelling ctx, or calling Cancel on the returned value, stops the pending
// timer and completes the Deferred with the context error. Once fn has
// started it runs to completion; fn receives a context that is cancelled when
// the Deferred completes.
func Run[T any](ctx context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) *Deferred[T] {
	ctx, cancel := context.WithCancel(ctx)
	d := &Deferred[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	if err := ctx.Err(); err != nil {
		var zero T
		d.complete(zero, err)
		return d
	}

	if delay < 0 {
		delay = 0
	}

	timer := time.AfterFunc(delay, func() {
		v, err := fn(ctx)
		d.complete(v, err)
	})

	context.AfterFunc(ctx, func() {
		if timer.Stop() {
			var zero T
			d.complete(zero, ctx.Err())
		}
	})

	return d
}

func (d *Deferred[T]) complete(v T, err error) {
	d.once.Do(func() {
		d.val, d.err = v, err
		close(d.done)
		d.cancel()
	})
}

// Done is closed when the result is available.
func (d *Deferred[T]) Done() <-chan struct{} { return d.done }

// Cancel abandons the operation if it has not started yet. It is safe to call
// more than once and after completion.
func (d *Deferred[T]) Cancel() { d.cancel() }

// Result returns the outcome without waiting, or ErrPending.
func (d *Deferred[T]) Result() (T, error) {
	select {
	case <-d.done:
		return d.val, d.err
	default:
		var zero T
		return zero, ErrPending
	}
}

// Await blocks until the result is available or ctx is done. When ctx ends
// first the operation is cancelled and ctx's error is returned.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.val, d.err
	case <-ctx.Done():
		d.Cancel()
		<-d.done
		if d.err == nil {
			return d.val, nil
		}
		return d.val, ctx.Err()
	}
}
