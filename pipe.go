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

// Pipe builds a sequence of steps over a Result, where each step receives
// the value of the previous one, and the whole sequence stops at the first
// step that doesn't return an Ok Result.
//
// Example:
//
//	r := result.NewPipe(parse(input)).
//		Into(validate).
//		Into(normalize).
//		Get()
//
// Steps that change the value type are added with PipeInto.
//
// All steps share the error type E, so when steps fail with different types,
// E should be an interface type, like error or any.
type Pipe[T, E any] struct {
	res Result[T, E]
}

func NewPipe[T, E any](r Result[T, E]) Pipe[T, E] {
	return Pipe[T, E]{res: r}
}

// Into adds a step that keeps the value type.
func (p Pipe[T, E]) Into(fn func(val T) Result[T, E]) Pipe[T, E] {
	return Pipe[T, E]{res: AndThen(p.res, fn)}
}

// Get returns the Result of the last step that ran.
func (p Pipe[T, E]) Get() Result[T, E] {
	return p.res
}

// PipeInto adds a step to p that changes the value type from T to U.
func PipeInto[T, U, E any](p Pipe[T, E], fn func(val T) Result[U, E]) Pipe[U, E] {
	return Pipe[U, E]{res: AndThen(p.res, fn)}
}
