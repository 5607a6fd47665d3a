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

// Package vfy provides runtime-checked design-by-contract primitives:
// preconditions, postconditions, loop invariants, and plain assertions.
//
// A violated contract is a programming error, not a recoverable condition,
// so every check panics with a *Violation describing what failed.
//
// Example usage:
//
//	func Head[T any](a []T) T {
//	    vfy.Requires(len(a) > 0, "Head: empty sequence")
//	    return a[0]
//	}
//
// Checks are active while Enabled is true (the default). Expensive
// conditions should use the Func variants so the condition is only
// evaluated when checking is on.
package vfy
