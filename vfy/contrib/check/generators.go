// Copyright 2025 go-verify Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package check

import (
	"math/rand"
	"slices"
)

// Int returns a generator for values in [-bound, bound].
func Int(bound int64) func(*rand.Rand) int64 {
	return func(r *rand.Rand) int64 {
		return r.Int63n(2*bound+1) - bound
	}
}

// IntSlice returns a generator for slices of length [0, maxLen] with
// elements in [-bound, bound]. Short slices and the empty slice are
// generated regularly so edge cases get exercised.
func IntSlice(maxLen int, bound int64) func(*rand.Rand) []int64 {
	elem := Int(bound)
	return func(r *rand.Rand) []int64 {
		n := r.Intn(maxLen + 1)
		s := make([]int64, n)
		for i := range s {
			s[i] = elem(r)
		}
		return s
	}
}

// SortedIntSlice returns a generator like IntSlice whose output is sorted
// non-decreasing.
func SortedIntSlice(maxLen int, bound int64) func(*rand.Rand) []int64 {
	gen := IntSlice(maxLen, bound)
	return func(r *rand.Rand) []int64 {
		s := gen(r)
		slices.Sort(s)
		return s
	}
}
