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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

const vfyImportPath = "github.com/ajroetker/go-verify/vfy"

// Generator orchestrates contract wrapper generation for one input file.
type Generator struct {
	InputFile  string // Input Go source file
	OutputDir  string // Output directory
	PackageOut string // Output package name (defaults to input package)
}

// OutputFile returns the path the wrappers are written to.
func (g *Generator) OutputFile() string {
	base := strings.TrimSuffix(filepath.Base(g.InputFile), ".go")
	return filepath.Join(g.OutputDir, base+"_contracts.go")
}

// Run executes the generation pipeline: parse directives, emit wrappers,
// format, write.
func (g *Generator) Run() error {
	result, err := Parse(g.InputFile)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if len(result.Funcs) == 0 {
		return fmt.Errorf("no functions with //vfy: directives found in %s", g.InputFile)
	}

	pkg := g.PackageOut
	if pkg == "" {
		pkg = result.PackageName
	}

	src := g.emit(pkg, result.Funcs)
	outPath := g.OutputFile()

	formatted, err := imports.Process(outPath, src, nil)
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	if err := os.WriteFile(outPath, formatted, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// emit renders the wrapper source for all annotated functions.
func (g *Generator) emit(pkg string, funcs []ParsedFunc) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by vfygen from %s. DO NOT EDIT.\n\n", filepath.Base(g.InputFile))
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import %q\n", vfyImportPath)

	for _, fn := range funcs {
		emitWrapper(&buf, fn)
	}
	return buf.Bytes()
}

// emitWrapper renders one Checked<Func> wrapper.
func emitWrapper(buf *bytes.Buffer, fn ParsedFunc) {
	fmt.Fprintf(buf, "\n// Checked%s calls %s with its contract checked at runtime.\n", fn.Name, fn.Name)
	fmt.Fprintf(buf, "func Checked%s%s(%s)%s {\n",
		fn.Name, typeParamList(fn.TypeParams), paramList(fn.Params), resultDecl(fn.Results))

	for _, expr := range fn.Requires {
		fmt.Fprintf(buf, "\tvfy.Requires(%s, %q)\n", expr, fn.Name+": requires "+expr)
	}

	call := fmt.Sprintf("%s%s(%s)", fn.Name, typeArgList(fn.TypeParams), argList(fn.Params))
	if len(fn.Results) == 1 {
		fmt.Fprintf(buf, "\tresult := %s\n", call)
	} else {
		fmt.Fprintf(buf, "\t%s\n", call)
	}

	for _, expr := range fn.Ensures {
		fmt.Fprintf(buf, "\tvfy.Ensures(%s, %q)\n", expr, fn.Name+": ensures "+expr)
	}

	if len(fn.Results) == 1 {
		fmt.Fprintf(buf, "\treturn result\n")
	}
	fmt.Fprintf(buf, "}\n")
}

// typeParamList renders "[T vfy.Ordered, U comparable]" or "".
func typeParamList(tps []TypeParam) string {
	if len(tps) == 0 {
		return ""
	}
	parts := make([]string, len(tps))
	for i, tp := range tps {
		parts[i] = tp.Name + " " + tp.Constraint
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// typeArgList renders the explicit instantiation "[T, U]" or "".
// Explicit instantiation keeps wrappers valid even when a type parameter
// is not inferable from the arguments.
func typeArgList(tps []TypeParam) string {
	if len(tps) == 0 {
		return ""
	}
	parts := make([]string, len(tps))
	for i, tp := range tps {
		parts[i] = tp.Name
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// paramList renders "a []T, key T".
func paramList(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

// argList renders the forwarding arguments, expanding variadics.
func argList(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name
		if strings.HasPrefix(p.Type, "...") {
			parts[i] += "..."
		}
	}
	return strings.Join(parts, ", ")
}

// resultDecl renders the result type, or "" for none.
func resultDecl(results []Param) string {
	if len(results) == 0 {
		return ""
	}
	return " " + results[0].Type
}
