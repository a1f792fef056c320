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
	"errors"
)

// To waits f to be settled, and returns its outcome as a Result.
//
// A fulfilled Future gives an Ok Result holding its value.
// A rejected Future gives an Err Result holding its rejection reason, unless
// the reason is a *ResultError, in which case the Err holds its original
// payload.
// If ctx is done before f is settled, the Err holds ctx.Err(), and f is left
// running.
//
// It never panics, except if a nil Future is passed.
func To[T any](ctx context.Context, f *Future[T]) Result[T, any] {
	if f == nil {
		panic(nilFuturePanicMsg)
	}

	val, reason, rejected, err := f.await(ctx)
	switch {
	case err != nil:
		return Err[T, any](err)
	case rejected:
		logCaptured(ctx, "result: future rejected", reason)
		return Err[T](capturedPayload(reason))
	default:
		return Ok[T, any](val)
	}
}

// Settle is the asynchronous version of To. It returns a Future which is
// always fulfilled, with the Result that To would return.
func Settle[T any](ctx context.Context, f *Future[T]) *Future[Result[T, any]] {
	if f == nil {
		panic(nilFuturePanicMsg)
	}

	return follow(ctx, func(ctx context.Context) Result[T, any] {
		return To(ctx, f)
	})
}

// ToCapture waits f, whose value is a Result, to be settled, and returns
// that Result.
//
// If f is rejected, the rejection reason is captured the same way Capture
// captures a panic value.
// If ctx is done before f is settled, the returned Err holds ctx.Err().
func ToCapture[T, E any](ctx context.Context, f *Future[Result[T, E]]) Result[T, any] {
	if f == nil {
		panic(nilFuturePanicMsg)
	}

	r, reason, rejected, err := f.await(ctx)
	switch {
	case err != nil:
		return Err[T, any](err)
	case rejected:
		logCaptured(ctx, "result: future rejected", reason)
		return Err[T](capturedPayload(reason))
	default:
		return Widen(r)
	}
}

// ToUnwrap waits f to be settled, and returns its value.
// It panics the same way Unwrap does, if f is rejected, with the original
// error payload preserved.
func ToUnwrap[T any](ctx context.Context, f *Future[T]) T {
	return To(ctx, f).Unwrap()
}

// ToUnwrapOr waits f to be settled, and returns its value, or def if f is
// rejected. It never panics.
func ToUnwrapOr[T any](ctx context.Context, f *Future[T], def T) T {
	return To(ctx, f).UnwrapOr(def)
}

// ToExpect waits f to be settled, and returns its value.
// It panics the same way Expect does, with msg, if f is rejected.
func ToExpect[T any](ctx context.Context, f *Future[T], msg string) T {
	return To(ctx, f).Expect(msg)
}

// Next attaches a continuation, fn, to f, and returns a Future which is
// fulfilled with fn's returned Result.
//
// fn is called, in a separate goroutine, with the value of the Result of f,
// only after f is settled, and only if that Result is Ok. Otherwise, the
// returned Future is fulfilled with that Result as is, without calling fn.
// If f is rejected, its rejection reason is captured the same way
// ToCapture does.
//
// If a message is passed, and fn returns an Err Result, that Result is
// replaced with an Err holding an error whose text is the message.
//
// If fn panics, the returned Future is rejected with the panic value, which
// is captured by the next continuation in the chain.
//
// Continuations attached through chained Next calls run one at a time, in
// the order they are attached, and none of them runs after the first Err.
//
// It will panic if a nil Future or a nil fn is passed.
func Next[T, U any](
	ctx context.Context,
	f *Future[Result[T, any]],
	fn func(ctx context.Context, val T) Result[U, any],
	message ...string,
) *Future[Result[U, any]] {
	if f == nil {
		panic(nilFuturePanicMsg)
	}
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	return follow(ctx, func(ctx context.Context) Result[U, any] {
		r := ToCapture(ctx, f)
		if r.kind != KindOk {
			return convert[U](r)
		}
		return withMessage(fn(ctx, r.val), message)
	})
}

// NextAsync is like Next, but for a continuation that returns a Future,
// which is waited before the returned Future is settled.
func NextAsync[T, U any](
	ctx context.Context,
	f *Future[Result[T, any]],
	fn func(ctx context.Context, val T) *Future[Result[U, any]],
	message ...string,
) *Future[Result[U, any]] {
	if f == nil {
		panic(nilFuturePanicMsg)
	}
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	return follow(ctx, func(ctx context.Context) Result[U, any] {
		r := ToCapture(ctx, f)
		if r.kind != KindOk {
			return convert[U](r)
		}
		return withMessage(ToCapture(ctx, fn(ctx, r.val)), message)
	})
}

// withMessage replaces an Err r with an Err holding an error whose text is
// the first message, if any.
func withMessage[T any](r Result[T, any], message []string) Result[T, any] {
	if r.kind != KindErr || len(message) == 0 {
		return r
	}
	return Err[T, any](errors.New(message[0]))
}
