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

// Capture calls fn, and returns an Ok Result holding its returned value.
//
// If fn panics, the panic is recovered, and an Err Result is returned.
// If the panic value is a *ResultError (from unwrapping an Err Result inside
// fn), the Err holds its original payload. Otherwise, the Err holds the panic
// value itself.
//
// It will panic if a nil fn is passed.
func Capture[T any](fn func() T) (res Result[T, any]) {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	defer func() {
		if v := recover(); v != nil {
			res = Err[T](capturedPayload(v))
		}
	}()

	return Ok[T, any](fn())
}

// CaptureResult is like Capture, but for a function that returns a Result,
// which is returned with its error payload boxed into an any value.
func CaptureResult[T, E any](fn func() Result[T, E]) (res Result[T, any]) {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}

	defer func() {
		if v := recover(); v != nil {
			res = Err[T](capturedPayload(v))
		}
	}()

	return Widen(fn())
}

// capturedPayload returns the Err payload that should represent the
// recovered panic value, or the rejection reason, v.
func capturedPayload(v any) any {
	if rerr, ok := v.(*ResultError); ok {
		return rerr.payload
	}
	return v
}
