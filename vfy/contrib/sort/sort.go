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

import "github.com/ajroetker/go-verify/vfy"

// sortInsertionThreshold: use insertion sort for slices this size or smaller.
const sortInsertionThreshold = 32

// Sort sorts data in-place into non-decreasing order. It is an introsort:
// quicksort with three-way partitioning, insertion sort for small slices,
// and a heapsort fallback past the recursion depth limit.
//
// Postcondition: Sorted(data) holds and data is a permutation of its
// initial contents. The permutation check snapshots the input, so it only
// runs while vfy.Enabled.
func Sort[T vfy.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	var snapshot []T
	if vfy.Enabled {
		snapshot = append([]T(nil), data...)
	}

	// Max recursion depth: 2 * floor(log2(n))
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	sortImpl(data, maxDepth)

	vfy.EnsuresFunc(func() bool { return Sorted(data) },
		"sort.Sort: output is non-decreasing")
	vfy.EnsuresFunc(func() bool { return IsPermutation(snapshot, data) },
		"sort.Sort: output is a permutation of the input")
}

// sortImpl is the recursive implementation of Sort.
func sortImpl[T vfy.Ordered](data []T, depthLimit int) {
	n := len(data)

	if n <= 1 {
		return
	}

	// Use insertion sort for small slices
	if n <= sortInsertionThreshold {
		sortInsertion(data)
		return
	}

	// Fallback to heapsort if recursion too deep
	if depthLimit == 0 {
		sortHeap(data)
		return
	}

	// Select pivot as median of first, middle, last
	pivot := pivotMedian3(data)

	// Partition into < pivot, == pivot, > pivot
	lt, gt := partition3Way(data, pivot)

	// Recurse on the strict partitions
	if lt > 0 {
		sortImpl(data[:lt], depthLimit-1)
	}
	if gt < n {
		sortImpl(data[gt:], depthLimit-1)
	}
}

// pivotMedian3 returns the median of the first, middle, and last elements.
func pivotMedian3[T vfy.Ordered](data []T) T {
	a, b, c := data[0], data[len(data)/2], data[len(data)-1]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
		if a > b {
			b = a
		}
	}
	return b
}

// partition3Way rearranges data around pivot and returns (lt, gt) such
// that data[:lt] < pivot, data[lt:gt] == pivot, data[gt:] > pivot.
func partition3Way[T vfy.Ordered](data []T, pivot T) (lt, gt int) {
	lt, gt = 0, len(data)
	i := 0
	for i < gt {
		// data[:lt] < pivot, data[lt:i] == pivot, data[gt:] > pivot.
		vfy.Invariant(lt <= i && i <= gt, "sort.partition3Way: scan stays inside interval")
		switch {
		case data[i] < pivot:
			data[i], data[lt] = data[lt], data[i]
			lt++
			i++
		case pivot < data[i]:
			gt--
			data[i], data[gt] = data[gt], data[i]
		default:
			i++
		}
	}
	return lt, gt
}

// sortInsertion is insertion sort for small slices.
func sortInsertion[T vfy.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// sortHeap is heapsort for the O(n log n) worst-case guarantee.
func sortHeap[T vfy.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T vfy.Ordered](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
