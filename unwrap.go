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

// Unwrap returns the value of r, if it's Ok.
//
// If r is Err, it panics with a *ResultError value which holds the error
// payload. If r is Pending or Empty, it panics with ErrPendingOrEmpty.
func (r Result[T, E]) Unwrap() T {
	switch r.kind {
	case KindOk:
		return r.val
	case KindErr:
		panic(newResultError(r.err))
	default:
		panic(ErrPendingOrEmpty)
	}
}

// UnwrapOr returns the value of r if it's Ok, otherwise it returns def.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.kind != KindOk {
		return def
	}
	return r.val
}

// UnwrapOrElse is like UnwrapOr, but the default value is computed by
// calling fn, only when r is not Ok.
func (r Result[T, E]) UnwrapOrElse(fn func() T) T {
	if r.kind != KindOk {
		return fn()
	}
	return r.val
}

// Expect is like Unwrap, but it panics with an *ExpectError whose message
// is msg, for any non-Ok Result.
func (r Result[T, E]) Expect(msg string) T {
	if r.kind != KindOk {
		panic(newExpectError(msg, r.payload()))
	}
	return r.val
}

// ExpectErr is like Expect, but it panics with err itself, which allows
// the caller to choose the type of the panic value.
func (r Result[T, E]) ExpectErr(err error) T {
	if r.kind != KindOk {
		panic(err)
	}
	return r.val
}

// payload returns the value that describes why r is not Ok.
func (r Result[T, E]) payload() any {
	if r.kind == KindErr {
		return r.err
	}
	return ErrPendingOrEmpty
}
