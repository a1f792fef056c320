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

	"golang.org/x/sync/errgroup"
)

// All waits all the provided Futures, concurrently, and returns an Ok Result
// holding their values, in the same order they are passed.
//
// It returns as soon as any Future is rejected, with an Err holding that
// rejection's payload, as To would return it, without waiting the remaining
// Futures.
// If ctx is done before that, the Err holds ctx.Err().
//
// If no Futures are passed, it returns an Ok Result holding an empty slice.
func All[T any](ctx context.Context, fs ...*Future[T]) Result[[]T, any] {
	for _, f := range fs {
		if f == nil {
			panic(nilFuturePanicMsg)
		}
	}

	vals := make([]T, len(fs))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range fs {
		g.Go(func() error {
			r := To(gctx, f)
			if payload, ok := r.Err(); ok {
				return newResultError(payload)
			}
			vals[i] = r.val
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// the first error is either a rejection, or the context error of a
		// Future that was still waited when ctx was done.
		return Err[[]T](capturedPayload(err))
	}
	return Ok[[]T, any](vals)
}
