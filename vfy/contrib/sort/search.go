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

package sort

import (
	"github.com/ajroetker/go-verify/vfy"
	"github.com/ajroetker/go-verify/vfy/contrib/algo"
)

// BinarySearch looks for val in a by halving the candidate interval.
// Precondition: Sorted(a). If found is true, i is in bounds and a[i] ==
// val; if found is false, no element of a equals val and i is 0.
func BinarySearch[T vfy.Ordered](a []T, val T) (i int, found bool) {
	vfy.RequiresFunc(func() bool { return Sorted(a) },
		"sort.BinarySearch: input must be sorted")

	lo, hi := 0, len(a)
	for lo < hi {
		// val can only occur inside a[lo:hi].
		vfy.Invariant(0 <= lo && lo < hi && hi <= len(a),
			"sort.BinarySearch: interval stays in bounds")
		mid := lo + (hi-lo)/2
		switch {
		case a[mid] < val:
			lo = mid + 1
		case val < a[mid]:
			hi = mid
		default:
			vfy.Ensures(mid < len(a) && a[mid] == val,
				"sort.BinarySearch: found index holds the value")
			return mid, true
		}
	}

	vfy.EnsuresFunc(func() bool {
		return algo.None(a, func(v T) bool { return v == val })
	}, "sort.BinarySearch: value occurs nowhere when not found")
	return 0, false
}
