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

package result_test

import (
	"context"
	"testing"

	result "github.com/albizures/vyke-results"
)

var benchRes result.Result[int, any]

func BenchmarkAndThen(b *testing.B) {
	inc := func(v int) result.Result[int, any] { return result.Ok[int, any](v + 1) }

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchRes = result.AndThen(result.Ok[int, any](i), inc)
	}
}

func BenchmarkMapInto(b *testing.B) {
	inc := func(v int) result.Result[int, any] { return result.Ok[int, any](v + 1) }

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchRes = result.MapInto(result.Ok[int, any](i), inc, inc, inc, inc)
	}
}

func BenchmarkCapture(b *testing.B) {
	b.Run("value", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			benchRes = result.Capture(func() int { return i })
		}
	})

	b.Run("unwrap", func(b *testing.B) {
		r := result.Err[int, any]("golang")

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			benchRes = result.Capture(r.Unwrap)
		}
	})
}

func BenchmarkGo(b *testing.B) {
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result.Go(ctx, func(context.Context) (int, error) { return 0, nil })
	}
}

func BenchmarkTo(b *testing.B) {
	ctx := context.Background()

	b.Run("resolved", func(b *testing.B) {
		f := result.Resolve(1)

		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			benchRes = result.To(ctx, f)
		}
	})

	b.Run("go", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			f := result.Go(ctx, func(context.Context) (int, error) { return i, nil })
			benchRes = result.To(ctx, f)
		}
	})
}

func BenchmarkNext(b *testing.B) {
	ctx := context.Background()
	inc := func(_ context.Context, v int) result.Result[int, any] { return result.Ok[int, any](v + 1) }

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := result.Settle(ctx, result.Resolve(i))
		f = result.Next(ctx, f, inc)
		benchRes = result.ToUnwrap(ctx, result.Next(ctx, f, inc))
	}
}
