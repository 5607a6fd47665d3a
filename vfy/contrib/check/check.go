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

// Package check is a small property-based testing harness. ForAll
// evaluates a property over deterministically generated random inputs,
// distributing the runs over a worker pool, and reports the first
// failing input together with the seed that reproduces it.
package check

import (
	"fmt"
	"math/rand"

	"github.com/ajroetker/go-verify/vfy"
	"github.com/ajroetker/go-verify/vfy/contrib/workerpool"
)

// Config controls a ForAll run.
type Config struct {
	Runs    int   // number of generated inputs (default 200)
	Seed    int64 // base seed; run i uses Seed+i (default 1)
	Workers int   // worker goroutines; <= 0 means GOMAXPROCS
}

func (c Config) withDefaults() Config {
	if c.Runs <= 0 {
		c.Runs = 200
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	return c
}

// ForAll generates cfg.Runs inputs with gen and evaluates prop on each.
// Every run derives its own rand.Rand from cfg.Seed, so results are
// deterministic regardless of how runs are spread over workers.
//
// A panic inside prop (including a contract *vfy.Violation) counts as a
// failure of that input. The returned error names the earliest failing
// run and its seed.
func ForAll[T any](cfg Config, gen func(*rand.Rand) T, prop func(T) error) error {
	cfg = cfg.withDefaults()

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	return pool.ParallelForErr(cfg.Runs, func(start, end int) error {
		for run := start; run < end; run++ {
			seed := cfg.Seed + int64(run)
			r := rand.New(rand.NewSource(seed))
			input := gen(r)
			if err := runProp(prop, input); err != nil {
				return fmt.Errorf("run %d (seed %d), input %v: %w", run, seed, input, err)
			}
		}
		return nil
	})
}

// runProp evaluates prop, converting panics into errors so one failing
// input cannot take down the whole run.
func runProp[T any](prop func(T) error, input T) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if v, ok := r.(*vfy.Violation); ok {
			err = v
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	return prop(input)
}
