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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Unwrap(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		assert.Equal(t, 7, Ok[int, error](7).Unwrap())
	})

	t.Run("err keeps the payload", func(t *testing.T) {
		payloads := []any{newStrError(), newPtrError(), "text", 42}
		for _, e := range payloads {
			v := recoverPanic(func() { Err[int](e).Unwrap() })
			rerr, ok := v.(*ResultError)
			require.True(t, ok, "got unexpected panic: %v", v)
			assert.Equal(t, e, rerr.Payload())
		}
	})

	t.Run("err message from an error payload", func(t *testing.T) {
		assert.PanicsWithError(t, "boom", func() {
			Err[int](errors.New("boom")).Unwrap()
		})
	})

	t.Run("err message from a non-error payload", func(t *testing.T) {
		assert.PanicsWithError(t, "42", func() {
			Err[int](42).Unwrap()
		})
	})

	t.Run("err is reachable through errors.Is", func(t *testing.T) {
		wantErr := newPtrError()
		v := recoverPanic(func() { Err[int](wantErr).Unwrap() })
		err, ok := v.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("pending and empty", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrPendingOrEmpty, func() { Pending[int, error]().Unwrap() })
		assert.PanicsWithValue(t, ErrPendingOrEmpty, func() { Empty[int, error]().Unwrap() })
		assert.PanicsWithError(t, "cannot unwrap a pending or empty result", func() {
			Result[int, error]{}.Unwrap()
		})
	})
}

func TestResult_UnwrapOr(t *testing.T) {
	tests := []struct {
		name string
		res  Result[int, any]
		want int
	}{
		{name: "ok", res: Ok[int, any](1), want: 1},
		{name: "err", res: Err[int, any](newStrError()), want: 9},
		{name: "empty", res: Empty[int, any](), want: 9},
		{name: "pending", res: Pending[int, any](), want: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, tt.res.UnwrapOr(9))
			})
		})
	}
}

func TestResult_UnwrapOrElse(t *testing.T) {
	calls := 0
	def := func() int {
		calls++
		return 9
	}

	assert.Equal(t, 1, Ok[int, error](1).UnwrapOrElse(def))
	assert.Equal(t, 0, calls, "the default must not be computed for an ok result")

	assert.Equal(t, 9, Err[int](newStrError()).UnwrapOrElse(def))
	assert.Equal(t, 1, calls)
}

func TestResult_Expect(t *testing.T) {
	assert.Equal(t, 1, Ok[int, error](1).Expect("unused"))

	wantErr := newPtrError()
	v := recoverPanic(func() { Err[int](wantErr).Expect("loading the config") })
	eerr, ok := v.(*ExpectError)
	require.True(t, ok, "got unexpected panic: %v", v)
	assert.Equal(t, "loading the config", eerr.Error())
	assert.Equal(t, wantErr, eerr.Payload())
	assert.ErrorIs(t, eerr, wantErr)

	v = recoverPanic(func() { Empty[int, error]().Expect("empty config") })
	eerr, ok = v.(*ExpectError)
	require.True(t, ok, "got unexpected panic: %v", v)
	assert.Equal(t, "empty config", eerr.Error())
	assert.ErrorIs(t, eerr, ErrPendingOrEmpty)
}

func TestResult_ExpectErr(t *testing.T) {
	assert.Equal(t, 1, Ok[int, string](1).ExpectErr(newStrError()))

	wantErr := newPtrError()
	assert.PanicsWithValue(t, wantErr, func() { Err[int]("x").ExpectErr(wantErr) })
	assert.PanicsWithValue(t, wantErr, func() { Pending[int, string]().ExpectErr(wantErr) })
}

func TestResult_Unwrap_DoesNotMutate(t *testing.T) {
	r := Err[int](newStrError())
	_ = recoverPanic(func() { r.Unwrap() })
	_ = r.UnwrapOr(3)
	_ = recoverPanic(func() { r.Expect("x") })

	assert.Equal(t, Err[int](newStrError()), r)
}
