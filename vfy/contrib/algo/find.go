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

// NotFound is the sentinel index returned by Find when no element matches.
const NotFound = -1

// Find returns the index of the first element equal to key, or NotFound.
// A non-negative result is always in bounds and indexes an element equal
// to key; NotFound means no element equals key.
func Find[T comparable](a []T, key T) int {
	for i, v := range a {
		if v == key {
			vfy.Ensures(i < len(a) && a[i] == key, "algo.Find: found index holds the key")
			return i
		}
	}

	vfy.EnsuresFunc(func() bool {
		return None(a, func(v T) bool { return v == key })
	}, "algo.Find: key occurs nowhere when NotFound is returned")
	return NotFound
}
