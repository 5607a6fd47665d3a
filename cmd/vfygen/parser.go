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
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
)

// Param represents a function parameter or return value.
type Param struct {
	Name string // parameter name (empty for returns)
	Type string // type expression as string
}

// TypeParam represents a generic type parameter.
type TypeParam struct {
	Name       string // T
	Constraint string // vfy.Ordered, comparable, ...
}

// ParsedFunc is a function carrying contract directives.
type ParsedFunc struct {
	Name       string
	TypeParams []TypeParam
	Params     []Param
	Results    []Param  // at most one
	Requires   []string // boolean expressions over the parameters
	Ensures    []string // boolean expressions over parameters and result
}

// ParseResult holds everything extracted from one input file.
type ParseResult struct {
	PackageName string
	Funcs       []ParsedFunc
}

// Parse reads a Go source file and extracts every function annotated with
// //vfy:requires or //vfy:ensures directives.
func Parse(path string) (*ParseResult, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{PackageName: file.Name.Name}
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		requires, ensures, err := contractDirectives(fd)
		if err != nil {
			return nil, err
		}
		if len(requires) == 0 && len(ensures) == 0 {
			continue
		}
		pf, err := parseFunc(fd, requires, ensures)
		if err != nil {
			return nil, err
		}
		result.Funcs = append(result.Funcs, pf)
	}
	return result, nil
}

// contractDirectives extracts and validates the //vfy: lines of a
// function's doc comment.
func contractDirectives(fd *ast.FuncDecl) (requires, ensures []string, err error) {
	for _, c := range fd.Doc.List {
		switch {
		case strings.HasPrefix(c.Text, "//vfy:requires"):
			expr, err := directiveExpr(fd.Name.Name, "requires", c.Text)
			if err != nil {
				return nil, nil, err
			}
			requires = append(requires, expr)
		case strings.HasPrefix(c.Text, "//vfy:ensures"):
			expr, err := directiveExpr(fd.Name.Name, "ensures", c.Text)
			if err != nil {
				return nil, nil, err
			}
			ensures = append(ensures, expr)
		case strings.HasPrefix(c.Text, "//vfy:"):
			return nil, nil, fmt.Errorf("%s: unknown directive %q", fd.Name.Name, c.Text)
		}
	}
	return requires, ensures, nil
}

// directiveExpr strips the directive prefix and checks that what remains
// is a parseable Go expression.
func directiveExpr(funcName, kind, line string) (string, error) {
	expr := strings.TrimSpace(strings.TrimPrefix(line, "//vfy:"+kind))
	if expr == "" {
		return "", fmt.Errorf("%s: empty //vfy:%s directive", funcName, kind)
	}
	if _, err := parser.ParseExpr(expr); err != nil {
		return "", fmt.Errorf("%s: invalid //vfy:%s expression %q: %v", funcName, kind, expr, err)
	}
	return expr, nil
}

// parseFunc validates the shape of an annotated function and captures its
// signature.
func parseFunc(fd *ast.FuncDecl, requires, ensures []string) (ParsedFunc, error) {
	name := fd.Name.Name
	if fd.Recv != nil {
		return ParsedFunc{}, fmt.Errorf("%s: methods are not supported", name)
	}

	pf := ParsedFunc{Name: name, Requires: requires, Ensures: ensures}

	if fd.Type.TypeParams != nil {
		for _, field := range fd.Type.TypeParams.List {
			constraint := types.ExprString(field.Type)
			for _, n := range field.Names {
				pf.TypeParams = append(pf.TypeParams, TypeParam{Name: n.Name, Constraint: constraint})
			}
		}
	}

	for _, field := range fd.Type.Params.List {
		typ := types.ExprString(field.Type)
		if len(field.Names) == 0 {
			return ParsedFunc{}, fmt.Errorf("%s: parameters must be named", name)
		}
		for _, n := range field.Names {
			pf.Params = append(pf.Params, Param{Name: n.Name, Type: typ})
		}
	}

	if fd.Type.Results != nil {
		for _, field := range fd.Type.Results.List {
			typ := types.ExprString(field.Type)
			if len(field.Names) == 0 {
				pf.Results = append(pf.Results, Param{Type: typ})
				continue
			}
			for _, n := range field.Names {
				pf.Results = append(pf.Results, Param{Name: n.Name, Type: typ})
			}
		}
	}
	if len(pf.Results) > 1 {
		return ParsedFunc{}, fmt.Errorf("%s: functions with multiple results are not supported", name)
	}

	return pf, nil
}
