// Copyright 2020 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package result

import (
	"context"

	"github.com/albizures/vyke-results/internal/status"
)

// State is the state of a Future.
type State int

const (
	// the order here matter
	Unsettled State = iota
	Fulfilled
	Rejected
)

func (s State) String() string {
	switch s {
	case Unsettled:
		return "unsettled"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "<unknown>"
	}
}

// Future represents some asynchronous work, whose eventual outcome is either
// a value of type T (fulfilled), or a rejection reason, which can be any
// value (rejected).
//
// A Future settles exactly once, and its outcome never changes after that.
// Its outcome is read through the bridge functions, like To and ToCapture.
//
// The zero value is not usable, Futures are created by Go, Resolve, Reject
// and Delay.
type Future[T any] struct {
	// closed when this future is settled.
	// it has one writer, the goroutine that won the SetResolving call,
	// but it can have multiple readers.
	syncChan chan struct{}

	// hold the outcome of the future.
	// written once, before the syncChan channel is closed.
	//
	// don't read them unless the syncChan is known to be closed.
	val    T
	reason any

	status status.FutureStatus
}

var closedChan = make(chan struct{})

func init() {
	close(closedChan)
}

// newFuture creates a new Future which is settled later, by another
// goroutine.
func newFuture[T any]() *Future[T] {
	return &Future[T]{syncChan: make(chan struct{})}
}

// newFutureSync creates a new Future which is settled synchronously, just
// after it's created.
func newFutureSync[T any]() *Future[T] {
	return &Future[T]{syncChan: closedChan}
}

// Go runs fn in a separate goroutine, and returns a Future which settles to
// fn's outcome.
//
// The returned Future is rejected with the returned error if it's not nil,
// or with the panic value if fn panics. Otherwise, it's fulfilled with the
// returned value.
//
// If fn calls runtime.Goexit, the returned Future is fulfilled with the zero
// value of T.
//
// It will panic if a nil fn is passed.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	f := newFuture[T]()
	go goHandler(ctx, f, fn)
	return f
}

func goHandler[T any](
	ctx context.Context,
	f *Future[T],
	fn func(ctx context.Context) (T, error),
) {
	var (
		val T
		err error
	)

	// defer the return handler to handle panics and runtime.Goexit calls
	defer handleReturns(f, &val, &err)

	val, err = fn(ctx)
}

// Resolve returns a Future that's fulfilled with val, synchronously.
func Resolve[T any](val T) *Future[T] {
	f := newFutureSync[T]()
	f.val = val
	f.status.SetFulfilledResolvedSync()
	return f
}

// Reject returns a Future that's rejected with reason, synchronously.
func Reject[T any](reason any) *Future[T] {
	f := newFutureSync[T]()
	f.reason = reason
	f.status.SetRejectedResolvedSync()
	return f
}

// Wait blocks until the Future is settled.
func (f *Future[T]) Wait() {
	<-f.syncChan
}

// Done returns a channel that's closed once the Future is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.syncChan
}

// State returns the current state of the Future, without blocking.
func (f *Future[T]) State() State {
	s := f.status.Load()
	switch {
	case !status.IsFateResolved(s):
		return Unsettled
	case status.IsStateFulfilled(s):
		return Fulfilled
	case status.IsStateRejected(s):
		return Rejected
	default:
		panic("result: internal: unexpected state")
	}
}

// await waits the Future to be settled, or ctx to be done, whichever
// happens first.
// if ctx is done first, err is its error, and the other values are invalid.
func (f *Future[T]) await(ctx context.Context) (val T, reason any, rejected bool, err error) {
	select {
	case <-f.syncChan:
	default:
		select {
		case <-f.syncChan:
		case <-ctx.Done():
			return val, nil, false, ctx.Err()
		}
	}

	// the syncChan is closed only after the status is updated
	if status.IsStateRejected(f.status.Load()) {
		return val, f.reason, true, nil
	}
	return f.val, nil, false, nil
}

// handleReturns must be deferred, directly, by the goroutine that runs the
// callback, and no internal call that may panic should happen after it's
// deferred.
// errP can be nil, if the callback doesn't return an error.
func handleReturns[T any](f *Future[T], valP *T, errP *error) {
	// make sure that only one call will settle the future
	if set, _ := f.status.SetResolving(); !set {
		return
	}

	if v := recover(); v != nil {
		// a panic happened, reject with the panic value.
		f.reject(v)
		return
	}

	// the callback returned normally, or through a call to runtime.Goexit,
	// in which case both values are still their zero values.
	if errP != nil && *errP != nil {
		f.reject(*errP)
		return
	}
	f.fulfill(*valP)
}

// fulfill and reject must be called only after a successful SetResolving call.

func (f *Future[T]) fulfill(val T) {
	f.val = val
	f.status.SetFulfilledResolved()
	close(f.syncChan)
}

func (f *Future[T]) reject(reason any) {
	f.reason = reason
	f.status.SetRejectedResolved()
	close(f.syncChan)
}

// follow runs cb in a separate goroutine, and returns a Future which is
// fulfilled with cb's returned value, or rejected with its panic value.
func follow[U any](ctx context.Context, cb func(ctx context.Context) U) *Future[U] {
	next := newFuture[U]()
	go followHandler(ctx, next, cb)
	return next
}

func followHandler[U any](
	ctx context.Context,
	next *Future[U],
	cb func(ctx context.Context) U,
) {
	var val U
	defer handleReturns(next, &val, nil)
	val = cb(ctx)
}
