// Copyright 2024 Ahmad Sameh(asmsh)
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
	"sync"
)

type GroupConfig struct {
	// Size is the allowed number of goroutines which this group can run at
	// the same time.
	// If it's 0 or less, then the group size is unlimited.
	Size int

	// CancelAllCtxOnFailure, if true, will result in canceling the Context
	// passed to all callbacks, once any callback returns an error or panics.
	// The default behavior is never canceling it on failures.
	CancelAllCtxOnFailure bool
}

// Group runs callbacks as Futures, with an optional limit on how many of them
// run at the same time, and keeps them to be waited together.
//
// A Group must not be copied after first use.
type Group[T any] struct {
	core groupCore

	mu      sync.Mutex
	futures []*Future[T]
}

func NewGroup[T any](ctx context.Context, c ...*GroupConfig) *Group[T] {
	g := &Group[T]{}
	g.core.ctx = ctx

	if len(c) != 0 && c[0] != nil {
		if size := c[0].Size; size > 0 {
			g.core.reserveChan = make(chan struct{}, size)
		}

		if c[0].CancelAllCtxOnFailure {
			g.core.ctx, g.core.cancel = context.WithCancel(ctx)
		}
	}

	return g
}

// Go is like the package level Go, but it blocks until the Group has a free
// goroutine, and fn receives the Group's Context.
func (g *Group[T]) Go(fn func(ctx context.Context) (T, error)) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	g.core.reserveGoroutine()
	f := newFuture[T]()
	go groupHandler(g, f, fn)

	g.mu.Lock()
	g.futures = append(g.futures, f)
	g.mu.Unlock()
	return f
}

func groupHandler[T any](
	g *Group[T],
	f *Future[T],
	fn func(ctx context.Context) (T, error),
) {
	defer g.core.freeGoroutine()
	defer g.core.cancelOnFailure(f)
	goHandler(g.core.ctx, f, fn)
}

// Wait waits all the Futures created by the Group so far, and returns their
// outcomes as Results, in the order they were created.
func (g *Group[T]) Wait(ctx context.Context) []Result[T, any] {
	g.mu.Lock()
	fs := append([]*Future[T](nil), g.futures...)
	g.mu.Unlock()

	res := make([]Result[T, any], len(fs))
	for i, f := range fs {
		res[i] = To(ctx, f)
	}
	return res
}

// All is like the package level All, for the Futures created by the Group so
// far.
func (g *Group[T]) All(ctx context.Context) Result[[]T, any] {
	g.mu.Lock()
	fs := append([]*Future[T](nil), g.futures...)
	g.mu.Unlock()

	return All(ctx, fs...)
}

type groupCore struct {
	reserveChan chan struct{}

	ctx context.Context

	// cancel will be non-nil if the Group is meant to cancel its Context
	// once any Future that's created using it is rejected.
	cancel context.CancelFunc
}

func (g *groupCore) reserveGoroutine() {
	if g.reserveChan != nil {
		g.reserveChan <- struct{}{}
	}
}

func (g *groupCore) freeGoroutine() {
	if g.reserveChan != nil {
		<-g.reserveChan
	}
}

func (g *groupCore) cancelOnFailure(f interface{ State() State }) {
	if g.cancel != nil && f.State() == Rejected {
		g.cancel()
	}
}
