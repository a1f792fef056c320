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

// AndThen calls fn with the value of r, and returns its Result, only if r
// is Ok.
// Otherwise, fn is not called, and r is returned with the same kind and
// payload.
//
// It will panic if a nil fn is passed.
func AndThen[T, U, E any](r Result[T, E], fn func(val T) Result[U, E]) Result[U, E] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	if r.kind != KindOk {
		return convert[U](r)
	}
	return fn(r.val)
}

// Map returns an Ok Result holding fn(val), if r is Ok with val.
// Otherwise, fn is not called, and r is returned with the same kind and
// payload.
func Map[T, U, E any](r Result[T, E], fn func(val T) U) Result[U, E] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	if r.kind != KindOk {
		return convert[U](r)
	}
	return Ok[U, E](fn(r.val))
}

// MapErr returns an Err Result holding fn(err), if r is Err with err.
// Otherwise, r is returned as is.
func MapErr[T, E, F any](r Result[T, E], fn func(err E) F) Result[T, F] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	switch r.kind {
	case KindErr:
		return Err[T](fn(r.err))
	case KindOk:
		return Ok[T, F](r.val)
	default:
		return Result[T, F]{kind: r.kind}
	}
}

// OrElse calls fn with the payload of r, and returns its Result, only if r
// is Err. Otherwise, r is returned as is.
func OrElse[T, E, F any](r Result[T, E], fn func(err E) Result[T, F]) Result[T, F] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	switch r.kind {
	case KindErr:
		return fn(r.err)
	case KindOk:
		return Ok[T, F](r.val)
	default:
		return Result[T, F]{kind: r.kind}
	}
}

// Flatten removes exactly one level of nesting from r.
//
// If r is Ok, the inner Result is returned as is, even if it holds another
// Result. If r is Err, Pending or Empty, it's returned with the same kind
// and payload.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.kind != KindOk {
		return convert[T](r)
	}
	return r.val
}

// MapInto calls the provided functions in order, passing each one the value
// of the Result returned from the previous one, starting with r.
//
// It stops at the first Result that is not Ok, and returns it, without
// calling any of the remaining functions.
func MapInto[T, E any](r Result[T, E], fns ...func(val T) Result[T, E]) Result[T, E] {
	for _, fn := range fns {
		if r.kind != KindOk {
			return r
		}
		r = AndThen(r, fn)
	}
	return r
}
