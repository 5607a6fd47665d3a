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

// All returns true if pred returns true for all elements.
// Short-circuits on first false. Vacuously true for an empty sequence.
func All[T any](a []T, pred func(T) bool) bool {
	for _, v := range a {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any returns true if pred returns true for any element.
// Short-circuits on first true.
func Any[T any](a []T, pred func(T) bool) bool {
	for _, v := range a {
		if pred(v) {
			return true
		}
	}
	return false
}

// None returns true if pred returns false for all elements.
// This is equivalent to !Any(a, pred).
func None[T any](a []T, pred func(T) bool) bool {
	return !Any(a, pred)
}

// Count returns the number of elements equal to key.
func Count[T comparable](a []T, key T) int {
	n := 0
	for _, v := range a {
		if v == key {
			n++
		}
	}
	return n
}

// MaximumIsUnique returns true iff exactly one position in values holds mx.
func MaximumIsUnique[T comparable](mx T, values []T) bool {
	return Count(values, mx) == 1
}
