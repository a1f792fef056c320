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

// Package result provides a small algebra for handling errors as values.
//
// It offers a Result container, which holds either a success value or an
// error payload, an Option container, which holds either a value or nothing,
// and a set of functions to construct, inspect, transform and unwrap them.
// It also bridges code that panics, and asynchronous work represented by a
// Future, into the Result model.
//
// A Result has four kinds, and it's always exactly one of them:
// Ok: it holds a success value.
// Err: it holds an error payload, which can be a value of any type, not only
// an error.
// Pending: the work that produces the value has not finished yet.
// Empty: there is deliberately no value and no error. It's the zero value.
//
//
// Unwrap Notes:-
//
// * Unwrap, Expect and ExpectErr are assertions, they panic when the Result
// is not Ok. Use them when an error is a programmer mistake.
//
// * Unwrapping an Err panics with a *ResultError value which holds the
// original payload, so it can be recovered without loss.
//
// * Unwrapping a Pending or Empty Result panics with ErrPendingOrEmpty.
//
// * UnwrapOr never panics.
//
//
// Boundary Notes:-
//
// * Capture, To, ToCapture, Next and All are the only functions that recover
// panics or receive rejections, and they always turn them into an Err.
//
// * If the recovered value is a *ResultError, the returned Err holds the
// original payload (it's never wrapped twice). Any other value becomes the
// payload as is.
//
// * Combinators that take a Result as input (AndThen, Map, MapInto, Pipe)
// never panic on a non-Ok input, they return it with the same kind and
// payload, without calling the provided function.
//
//
// Future Notes:-
//
// * A Future settles exactly once, to either fulfilled or rejected.
//
// * A panic inside the function passed to Go rejects the Future with the
// panic value.
//
// * Continuations attached through Next run one at a time, in the order they
// were attached, each one after the previous one has settled.
//
// * Passing a done context to any of the bridge functions only abandons the
// wait, the work behind the Future is never canceled by this package.
//
// * A Group limits how many Futures run at once, and it can cancel the
// context of all its callbacks on the first failure, if configured to.
package result
