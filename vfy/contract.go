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

package vfy

import "fmt"

// Enabled controls whether contract checks are evaluated.
// It defaults to true; callers that have proven their contracts externally
// can switch checking off for production builds.
var Enabled = true

// Kind identifies which class of contract was violated.
type Kind int

const (
	PreconditionViolation Kind = iota
	PostconditionViolation
	InvariantViolation
	AssertionViolation
)

// String returns the lowercase name of the contract kind.
func (k Kind) String() string {
	switch k {
	case PreconditionViolation:
		return "precondition"
	case PostconditionViolation:
		return "postcondition"
	case InvariantViolation:
		return "invariant"
	case AssertionViolation:
		return "assertion"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Violation describes a failed contract check. Checks panic with a
// *Violation; it implements error so recovered values compose with
// error-based reporting.
type Violation struct {
	Kind Kind
	Msg  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s violated: %s", v.Kind, v.Msg)
}

func fail(kind Kind, msg string) {
	panic(&Violation{Kind: kind, Msg: msg})
}

// Requires checks a precondition. A false condition means the caller broke
// the contract; Requires panics with a *Violation rather than returning an
// error.
func Requires(cond bool, msg string) {
	if Enabled && !cond {
		fail(PreconditionViolation, msg)
	}
}

// RequiresFunc is the lazy form of Requires for conditions that are
// expensive to evaluate. pred runs only while Enabled.
func RequiresFunc(pred func() bool, msg string) {
	if Enabled && !pred() {
		fail(PreconditionViolation, msg)
	}
}

// Ensures checks a postcondition established by the implementation.
func Ensures(cond bool, msg string) {
	if Enabled && !cond {
		fail(PostconditionViolation, msg)
	}
}

// EnsuresFunc is the lazy form of Ensures for conditions that are
// expensive to evaluate. pred runs only while Enabled.
func EnsuresFunc(pred func() bool, msg string) {
	if Enabled && !pred() {
		fail(PostconditionViolation, msg)
	}
}

// Invariant checks a loop or data-structure invariant.
func Invariant(cond bool, msg string) {
	if Enabled && !cond {
		fail(InvariantViolation, msg)
	}
}

// Assert checks a free-standing assertion.
func Assert(cond bool, msg string) {
	if Enabled && !cond {
		fail(AssertionViolation, msg)
	}
}
