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

import "testing"

// expectViolation runs fn and fails the test unless fn panics with a
// *Violation of the given kind.
func expectViolation(t *testing.T, kind Kind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected %s violation, got none", kind)
		}
		v, ok := r.(*Violation)
		if !ok {
			t.Fatalf("expected *Violation, got %T: %v", r, r)
		}
		if v.Kind != kind {
			t.Errorf("violation kind = %s, want %s", v.Kind, kind)
		}
	}()
	fn()
}

// TestCheckKinds verifies each check panics with its own violation kind.
func TestCheckKinds(t *testing.T) {
	expectViolation(t, PreconditionViolation, func() { Requires(false, "r") })
	expectViolation(t, PostconditionViolation, func() { Ensures(false, "e") })
	expectViolation(t, InvariantViolation, func() { Invariant(false, "i") })
	expectViolation(t, AssertionViolation, func() { Assert(false, "a") })
	expectViolation(t, PreconditionViolation, func() { RequiresFunc(func() bool { return false }, "rf") })
	expectViolation(t, PostconditionViolation, func() { EnsuresFunc(func() bool { return false }, "ef") })
}

// TestTrueConditionsPass verifies true conditions never panic.
func TestTrueConditionsPass(t *testing.T) {
	Requires(true, "r")
	Ensures(true, "e")
	Invariant(true, "i")
	Assert(true, "a")
	RequiresFunc(func() bool { return true }, "rf")
	EnsuresFunc(func() bool { return true }, "ef")
}

// TestViolationError verifies the error message format.
func TestViolationError(t *testing.T) {
	tests := []struct {
		kind Kind
		msg  string
		want string
	}{
		{PreconditionViolation, "empty sequence", "precondition violated: empty sequence"},
		{PostconditionViolation, "not sorted", "postcondition violated: not sorted"},
		{InvariantViolation, "index out of range", "invariant violated: index out of range"},
		{AssertionViolation, "unreachable", "assertion violated: unreachable"},
	}
	for _, tt := range tests {
		v := &Violation{Kind: tt.kind, Msg: tt.msg}
		if got := v.Error(); got != tt.want {
			t.Errorf("Violation.Error() = %q, want %q", got, tt.want)
		}
	}
}

// TestDisabled verifies that no check fires while Enabled is false, and
// that lazy conditions are not even evaluated.
func TestDisabled(t *testing.T) {
	Enabled = false
	defer func() { Enabled = true }()

	Requires(false, "r")
	Ensures(false, "e")
	Invariant(false, "i")
	Assert(false, "a")

	called := false
	RequiresFunc(func() bool { called = true; return false }, "rf")
	EnsuresFunc(func() bool { called = true; return false }, "ef")
	if called {
		t.Error("lazy condition evaluated while checking is disabled")
	}
}

// TestKindString verifies Kind names, including out-of-range values.
func TestKindString(t *testing.T) {
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q, want %q", got, "Kind(42)")
	}
}
