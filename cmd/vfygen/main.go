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

// Command vfygen generates runtime contract-check wrappers from //vfy:
// directives in Go source files.
//
// Usage:
//
//	vfygen -input exercises.go -output .
//
// Or via go:generate:
//
//	//go:generate vfygen -input $GOFILE -output .
//
// A function annotated with
//
//	//vfy:requires len(a) > 0
//	//vfy:ensures result >= a[0]
//	func Head(a []int) int { ... }
//
// yields a CheckedHead wrapper in exercises_contracts.go that asserts
// every requires directive before calling Head and every ensures
// directive after, with result bound to the return value.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	inputFile  = flag.String("input", "", "Input Go source file (required)")
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	packageOut = flag.String("pkg", "", "Output package name (default: same as input)")
)

func main() {
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		InputFile:  *inputFile,
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vfygen: %v\n", err)
		os.Exit(1)
	}
}
