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

package algo

import "github.com/ajroetker/go-verify/vfy"

// Maximum returns the greatest element of values.
// The sequence must be non-empty; the postcondition guarantees the result
// bounds every element and occurs in the sequence.
func Maximum[T vfy.Ordered](values []T) T {
	vfy.Requires(len(values) > 0, "algo.Maximum: empty sequence")

	max := values[0]
	for i := 1; i < len(values); i++ {
		if max < values[i] {
			max = values[i]
		}
		// max is the maximum of values[:i+1].
		vfy.Invariant(max >= values[i], "algo.Maximum: candidate dominates scanned prefix")
	}

	vfy.EnsuresFunc(func() bool {
		return None(values, func(v T) bool { return v > max })
	}, "algo.Maximum: result is an upper bound")
	vfy.EnsuresFunc(func() bool {
		return Any(values, func(v T) bool { return v == max })
	}, "algo.Maximum: result occurs in the sequence")
	return max
}

// FindMax returns the index of the greatest element of values, taking the
// first occurrence on ties. The sequence must be non-empty.
func FindMax[T vfy.Ordered](values []T) int {
	vfy.Requires(len(values) > 0, "algo.FindMax: empty sequence")

	best := 0
	for i := 1; i < len(values); i++ {
		if values[best] < values[i] {
			best = i
		}
		vfy.Invariant(best <= i, "algo.FindMax: candidate index inside scanned prefix")
	}

	vfy.Ensures(best >= 0 && best < len(values), "algo.FindMax: index in bounds")
	vfy.EnsuresFunc(func() bool {
		return None(values, func(v T) bool { return v > values[best] })
	}, "algo.FindMax: element at index is an upper bound")
	return best
}
