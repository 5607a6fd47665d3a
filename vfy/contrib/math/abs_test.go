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

import (
	"fmt"
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-verify/vfy"
	"github.com/ajroetker/go-verify/vfy/contrib/check"
)

// expectViolation runs fn and fails the test unless fn panics with a
// *vfy.Violation of the given kind.
func expectViolation(t *testing.T, kind vfy.Kind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected %s violation, got none", kind)
		}
		v, ok := r.(*vfy.Violation)
		if !ok {
			t.Fatalf("expected *vfy.Violation, got %T: %v", r, r)
		}
		if v.Kind != kind {
			t.Errorf("violation kind = %s, want %s", v.Kind, kind)
		}
	}()
	fn()
}

// TestAbs tests absolute value on representative inputs.
func TestAbs(t *testing.T) {
	tests := []struct {
		x, want int32
	}{
		{0, 0},
		{3, 3},
		{-3, 3},
		{1, 1},
		{-1, 1},
		{stdmath.MaxInt32, stdmath.MaxInt32},
		{stdmath.MinInt32 + 1, stdmath.MaxInt32},
	}
	for _, tt := range tests {
		if got := Abs(tt.x); got != tt.want {
			t.Errorf("Abs(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

// TestAbsMinValue tests that negating the minimum value is rejected as a
// precondition violation rather than silently overflowing.
func TestAbsMinValue(t *testing.T) {
	expectViolation(t, vfy.PreconditionViolation, func() {
		Abs(int32(stdmath.MinInt32))
	})
	expectViolation(t, vfy.PreconditionViolation, func() {
		Abs(int8(stdmath.MinInt8))
	})
}

// TestAbsProperties tests the Abs postconditions over random inputs:
// result is non-negative and is either x or -x.
func TestAbsProperties(t *testing.T) {
	gen := check.Int(stdmath.MaxInt32)
	err := check.ForAll(check.Config{Runs: 500}, gen, func(x int64) error {
		got := Abs(x)
		if got < 0 {
			return fmt.Errorf("Abs(%d) = %d is negative", x, got)
		}
		if got != x && got != -x {
			return fmt.Errorf("Abs(%d) = %d is neither x nor -x", x, got)
		}
		return nil
	})
	if err != nil {
		t.Error(err)
	}
}
