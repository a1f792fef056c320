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

// Package status holds the atomic status word of a Future.
//
// The status is made of two sections, the fate and the state.
//
// The fate tells whether the Future's result is known:
// Unresolved: nothing has settled the Future yet.
// Resolving: a single goroutine won the right to settle the Future, and it's
// now writing its result.
// Resolved: the result is written, and it will never change.
//
// The state tells what the result is:
// Pending: the result is not known yet.
// Fulfilled: the Future settled with a value.
// Rejected: the Future settled with a rejection reason.
//
// A Future whose fate is not Resolved, its state must be Pending.
package status

import (
	"sync/atomic"
)

var (
	cas  = atomic.CompareAndSwapUint32
	load = atomic.LoadUint32
)

// FutureStatus holds the fate and the state of a Future.
// It's read and updated atomically.
type FutureStatus uint32

// the fate's related values and constants, using 2 bits(the [1st : 2nd] bits)
const (
	fateUnresolved uint32 = iota
	fateResolving
	fateResolved
	_ // reserved
)

// the state's related values and constants, using 2 bits(the [3rd : 4th] bits)
const (
	// starting with a shift amount of 2, which is the number of bits used by
	// the fate section.
	statePending uint32 = iota << 2
	stateFulfilled
	stateRejected
	_ // reserved
)

const (
	// fateBitsSetMask and stateBitsSetMask are &-ed with the status to get
	// the fate value and the state value, respectively.
	fateBitsSetMask  uint32 = 3
	stateBitsSetMask uint32 = 3 << 2
)

// Load returns the current status value.
func (s *FutureStatus) Load() uint32 {
	return load((*uint32)(s))
}

// SetResolving sets the fate to Resolving, only if it's Unresolved.
// Only the caller that gets set = true is allowed to write the result and
// then call one of the SetXResolved methods.
func (s *FutureStatus) SetResolving() (set bool, status uint32) {
	for {
		cs := load((*uint32)(s))
		if cs&fateBitsSetMask != fateUnresolved {
			return false, cs
		}

		ns := cs&^fateBitsSetMask | fateResolving
		if cas((*uint32)(s), cs, ns) {
			return true, ns
		}
	}
}

func (s *FutureStatus) SetFulfilledResolved() (set bool, status uint32) {
	return s.setResolved(stateFulfilled)
}

func (s *FutureStatus) SetRejectedResolved() (set bool, status uint32) {
	return s.setResolved(stateRejected)
}

// setResolved sets the state to the provided one and the fate to Resolved,
// only if the fate is Unresolved or Resolving.
func (s *FutureStatus) setResolved(state uint32) (set bool, status uint32) {
	for {
		cs := load((*uint32)(s))
		if cs&fateBitsSetMask == fateResolved {
			return false, cs
		}

		ns := state | fateResolved
		if cas((*uint32)(s), cs, ns) {
			return true, ns
		}
	}
}

// SetFulfilledResolvedSync should be used only before the Future is
// returned to the caller, as it updates the status value directly, which is
// safe since the Future is accessible from the current goroutine only.
func (s *FutureStatus) SetFulfilledResolvedSync() (status uint32) {
	ns := stateFulfilled | fateResolved
	*s = FutureStatus(ns)
	return ns
}

// SetRejectedResolvedSync is the rejected counterpart of
// SetFulfilledResolvedSync, with the same restrictions.
func (s *FutureStatus) SetRejectedResolvedSync() (status uint32) {
	ns := stateRejected | fateResolved
	*s = FutureStatus(ns)
	return ns
}

func IsFateUnresolved(status uint32) bool {
	return status&fateBitsSetMask == fateUnresolved
}

func IsFateResolving(status uint32) bool {
	return status&fateBitsSetMask == fateResolving
}

func IsFateResolved(status uint32) bool {
	return status&fateBitsSetMask == fateResolved
}

func IsStatePending(status uint32) bool {
	return status&stateBitsSetMask == statePending
}

func IsStateFulfilled(status uint32) bool {
	return status&stateBitsSetMask == stateFulfilled
}

func IsStateRejected(status uint32) bool {
	return status&stateBitsSetMask == stateRejected
}
