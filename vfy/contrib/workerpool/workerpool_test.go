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

package workerpool

import (
	"errors"
	"sync/atomic"
	"testing"
)

// TestParallelForCoversRange tests that every index is processed exactly once.
func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const n = 1000
	var hits [n]atomic.Int32
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			hits[i].Add(1)
		}
	})

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d processed %d times, want 1", i, got)
		}
	}
}

// TestParallelForSmallN tests n smaller than the worker count.
func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var total atomic.Int64
	pool.ParallelFor(3, func(start, end int) {
		for i := start; i < end; i++ {
			total.Add(int64(i))
		}
	})
	if got := total.Load(); got != 3 {
		t.Errorf("sum over [0,3) = %d, want 3", got)
	}
}

// TestParallelForZero tests that n <= 0 is a no-op.
func TestParallelForZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelFor(-5, func(start, end int) { called = true })
	if called {
		t.Error("ParallelFor ran work for an empty range")
	}
}

// TestParallelForErr tests that the first failing range's error is returned.
func TestParallelForErr(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errBoom := errors.New("boom")
	err := pool.ParallelForErr(100, func(start, end int) error {
		if start <= 42 && 42 < end {
			return errBoom
		}
		return nil
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("ParallelForErr = %v, want %v", err, errBoom)
	}

	if err := pool.ParallelForErr(100, func(start, end int) error { return nil }); err != nil {
		t.Errorf("ParallelForErr (no failures) = %v, want nil", err)
	}
}

// TestClosedPoolRunsSequentially tests the sequential fallback after Close.
func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // double-close is safe

	var ranges [][2]int
	pool.ParallelFor(10, func(start, end int) {
		ranges = append(ranges, [2]int{start, end})
	})
	if len(ranges) != 1 || ranges[0] != [2]int{0, 10} {
		t.Errorf("closed pool ranges = %v, want [[0 10]]", ranges)
	}
}

// TestNumWorkers tests worker count defaults.
func TestNumWorkers(t *testing.T) {
	pool := New(3)
	defer pool.Close()
	if got := pool.NumWorkers(); got != 3 {
		t.Errorf("NumWorkers() = %d, want 3", got)
	}

	auto := New(0)
	defer auto.Close()
	if auto.NumWorkers() <= 0 {
		t.Errorf("NumWorkers() = %d, want > 0 for auto sizing", auto.NumWorkers())
	}
}
