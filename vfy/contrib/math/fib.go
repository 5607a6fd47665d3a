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

package math

import "github.com/ajroetker/go-verify/vfy"

// fibMaxN is the largest n for which fib(n) fits in a uint64.
// fib(93) = 12200160415121876738; fib(94) exceeds 2^64-1.
const fibMaxN = 93

// Fib returns the nth Fibonacci number under the convention
// fib(0)=0, fib(1)=1, fib(n)=fib(n-1)+fib(n-2).
//
// This is the naive recursive definition and runs in exponential time;
// it exists as the reference the contracts are written against. Use
// FibIter for anything beyond small n.
func Fib(n uint64) uint64 {
	vfy.Requires(n <= fibMaxN, "math.Fib: fib(n) overflows uint64 for n > 93")

	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return Fib(n-1) + Fib(n-2)
}

// FibIter returns the nth Fibonacci number by iterating the pair
// (fib(i), fib(i+1)). Same contract as Fib, linear time.
func FibIter(n uint64) uint64 {
	vfy.Requires(n <= fibMaxN, "math.FibIter: fib(n) overflows uint64 for n > 93")

	a, b := uint64(0), uint64(1)
	for i := uint64(0); i < n; i++ {
		// (a, b) = (fib(i), fib(i+1)) throughout the loop.
		vfy.Invariant(b >= a, "math.FibIter: pair stays ordered")
		a, b = b, a+b
	}
	return a
}
