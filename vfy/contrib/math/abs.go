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

// Abs returns the absolute value of x.
//
// The minimum value of a signed type has no representable negation, so
// x must not be it. The postcondition pins the result to x or -x and to
// being non-negative.
func Abs[T vfy.SignedInts](x T) T {
	vfy.Requires(x >= 0 || -x > 0, "math.Abs: negation of minimum value overflows")

	result := x
	if x < 0 {
		result = -x
	}

	vfy.Ensures(result >= 0, "math.Abs: result is non-negative")
	vfy.Ensures(result == x || result == -x, "math.Abs: result is x or -x")
	return result
}
