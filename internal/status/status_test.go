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

package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// the benchmarks calls the SetFulfilledResolved method, as all setters
// use the same technique, but only set different values.

func BenchmarkFutureStatus_Setters(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := FutureStatus(0)
		s.SetResolving()
		s.SetFulfilledResolved()
	}
}

func BenchmarkFutureStatus_Load(b *testing.B) {
	s := FutureStatus(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Load()
	}
}

func TestFutureStatus_Initial(t *testing.T) {
	s := FutureStatus(0)
	assert.True(t, IsFateUnresolved(s.Load()))
	assert.True(t, IsStatePending(s.Load()))
}

func TestFutureStatus_Resolving(t *testing.T) {
	s := FutureStatus(0)

	// first set to resolving should succeed
	set, ns := s.SetResolving()
	assert.True(t, set)
	assert.Equal(t, s.Load(), ns)
	assert.True(t, IsFateResolving(ns))
	assert.True(t, IsStatePending(ns))

	// second set to resolving should fail, without changing the status
	set, ns2 := s.SetResolving()
	assert.False(t, set)
	assert.Equal(t, ns, ns2)
}

func TestFutureStatus_Resolved(t *testing.T) {
	tests := []struct {
		name      string
		set       func(s *FutureStatus) (bool, uint32)
		fulfilled bool
	}{
		{name: "fulfilled", set: (*FutureStatus).SetFulfilledResolved, fulfilled: true},
		{name: "rejected", set: (*FutureStatus).SetRejectedResolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FutureStatus(0)
			s.SetResolving()

			set, ns := tt.set(&s)
			assert.True(t, set)
			assert.True(t, IsFateResolved(ns))
			assert.Equal(t, tt.fulfilled, IsStateFulfilled(ns))
			assert.Equal(t, !tt.fulfilled, IsStateRejected(ns))

			// the result of a resolved status never changes
			set, _ = s.SetFulfilledResolved()
			assert.False(t, set)
			set, _ = s.SetRejectedResolved()
			assert.False(t, set)
			set, _ = s.SetResolving()
			assert.False(t, set)
			assert.Equal(t, ns, s.Load())
		})
	}
}

func TestFutureStatus_Sync(t *testing.T) {
	var s FutureStatus
	ns := s.SetFulfilledResolvedSync()
	assert.True(t, IsFateResolved(ns))
	assert.True(t, IsStateFulfilled(ns))

	var s2 FutureStatus
	ns = s2.SetRejectedResolvedSync()
	assert.True(t, IsFateResolved(ns))
	assert.True(t, IsStateRejected(ns))
}

func TestFutureStatus_Resolving_Concurrent(t *testing.T) {
	s := FutureStatus(0)

	var winners atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if set, _ := s.SetResolving(); set {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, winners.Load())
}
