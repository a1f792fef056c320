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

// Kind is the discriminant of a Result.
type Kind uint8

const (
	// the order here matter, the zero Kind must be KindEmpty
	KindEmpty Kind = iota
	KindPending
	KindOk
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPending:
		return "pending"
	case KindOk:
		return "ok"
	case KindErr:
		return "err"
	default:
		return "<unknown>"
	}
}

// Result holds the outcome of a computation, which is exactly one of its
// four kinds: Ok with a value of type T, Err with a payload of type E,
// Pending, or Empty.
//
// The zero value is an Empty Result.
//
// Result values are immutable, and they are meant to be passed by value.
type Result[T, E any] struct {
	kind Kind

	// only valid when kind is KindOk.
	val T

	// only valid when kind is KindErr.
	err E
}

// Ok returns an Ok Result holding val.
func Ok[T, E any](val T) Result[T, E] {
	return Result[T, E]{kind: KindOk, val: val}
}

// Err returns an Err Result holding the payload err, which can be a value
// of any type.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{kind: KindErr, err: err}
}

// Empty returns a Result that holds no value and no error.
func Empty[T, E any]() Result[T, E] {
	return Result[T, E]{}
}

// Pending returns a Result whose value is not known yet.
func Pending[T, E any]() Result[T, E] {
	return Result[T, E]{kind: KindPending}
}

// FromPair converts the conventional (value, error) return pair into a
// Result, which is Err if err is not nil, and Ok otherwise.
func FromPair[T any](val T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](val)
}

// Widen returns r with its error payload boxed into an any value, keeping
// its kind and payload.
func Widen[T, E any](r Result[T, E]) Result[T, any] {
	switch r.kind {
	case KindOk:
		return Ok[T, any](r.val)
	case KindErr:
		return Err[T, any](r.err)
	default:
		return Result[T, any]{kind: r.kind}
	}
}

func (r Result[T, E]) Kind() Kind { return r.kind }

func (r Result[T, E]) IsOk() bool      { return r.kind == KindOk }
func (r Result[T, E]) IsErr() bool     { return r.kind == KindErr }
func (r Result[T, E]) IsEmpty() bool   { return r.kind == KindEmpty }
func (r Result[T, E]) IsPending() bool { return r.kind == KindPending }

// Ok returns the success value and true, only if r is Ok.
// Otherwise, it returns the zero value of T and false.
func (r Result[T, E]) Ok() (val T, ok bool) {
	if r.kind != KindOk {
		return val, false
	}
	return r.val, true
}

// Err returns the error payload and true, only if r is Err.
// Otherwise, it returns the zero value of E and false.
func (r Result[T, E]) Err() (err E, ok bool) {
	if r.kind != KindErr {
		return err, false
	}
	return r.err, true
}

// Pair converts r into the conventional (value, error) return pair.
//
// An Err payload that is not an error is wrapped in a *ResultError, and a
// Pending or Empty Result returns ErrPendingOrEmpty.
func (r Result[T, E]) Pair() (val T, err error) {
	switch r.kind {
	case KindOk:
		return r.val, nil
	case KindErr:
		if e, ok := any(r.err).(error); ok && e != nil {
			return val, e
		}
		return val, newResultError(r.err)
	default:
		return val, ErrPendingOrEmpty
	}
}

func (r Result[T, E]) String() string {
	switch r.kind {
	case KindOk:
		return fmt.Sprintf("ok: %v", r.val)
	case KindErr:
		return fmt.Sprintf("err: %v", r.err)
	default:
		return r.kind.String()
	}
}

// resultKind is implemented by every instantiation of Result.
func (r Result[T, E]) resultKind() Kind { return r.kind }

type kinded interface {
	resultKind() Kind
}

// IsResult reports whether v holds a Result of any type parameters.
func IsResult(v any) bool {
	_, ok := v.(kinded)
	return ok
}

// convert returns a non-Ok r as a Result with a different value type,
// keeping its kind and payload.
// it must not be called with an Ok Result.
func convert[U, T, E any](r Result[T, E]) Result[U, E] {
	if r.kind == KindOk {
		panic("result: internal: unexpected conversion of an ok result")
	}
	return Result[U, E]{kind: r.kind, err: r.err}
}
