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

import "fmt"

// Option holds either a value (Some), or nothing (None).
//
// The zero value is None.
type Option[T any] struct {
	some bool
	val  T
}

func Some[T any](val T) Option[T] {
	return Option[T]{some: true, val: val}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf returns Some with the value of r, only if r is Ok, otherwise
// it returns None.
func OptionOf[T, E any](r Result[T, E]) Option[T] {
	if val, ok := r.Ok(); ok {
		return Some(val)
	}
	return None[T]()
}

// OkOr returns an Ok Result with the value of o if it's Some, otherwise it
// returns an Err Result with the payload err.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.val)
	}
	return Err[T](err)
}

func (o Option[T]) IsSome() bool { return o.some }
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and true if o is Some, otherwise it returns the
// zero value of T and false.
func (o Option[T]) Get() (val T, ok bool) {
	return o.val, o.some
}

// Unwrap returns the value of o, or panics with ErrNoneUnwrapped if o is None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrNoneUnwrapped)
	}
	return o.val
}

func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.val
}

// Expect is like Unwrap, but it panics with an error whose message is msg.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(newExpectError(msg, nil))
	}
	return o.val
}

func (o Option[T]) String() string {
	if !o.some {
		return "none"
	}
	return fmt.Sprintf("some: %v", o.val)
}
