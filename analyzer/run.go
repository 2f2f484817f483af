// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/features/internal/maskdef"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// featuresPath is the import path of the package whose declarations are
// checked.
const featuresPath = "fillmore-labs.com/features"

// run executes the featureset analyzer.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("featureset: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	nodes := []ast.Node{
		(*ast.File)(nil),
		(*ast.CallExpr)(nil),
	}

	in.Nodes(nodes, func(n ast.Node, push bool) bool {
		if !push {
			return false
		}

		switch node := n.(type) {
		case *ast.File:
			return r.checks.Enabled(includeGenerated) || !ast.IsGenerated(node)

		case *ast.CallExpr:
			r.checkCall(p, node)

			return true

		default:
			return true
		}
	})

	return nil, nil
}

// checkCall dispatches one call expression to the enabled checks.
func (r *runOptions) checkCall(p *analysis.Pass, call *ast.CallExpr) {
	fn, ok := typeutil.Callee(p.TypesInfo, call).(*types.Func)
	if !ok {
		return
	}

	switch {
	case isFeaturesFunc(fn, "New"), isFeaturesFunc(fn, "Must"):
		if r.checks.Enabled(checkDeclarations) {
			r.checkDeclaration(p, call)
		}

	case isFlagSetMethod(fn, "Enabled"):
		if r.checks.Enabled(checkVacuousQueries) {
			r.checkVacuousQuery(p, call)
		}
	}
}

// checkDeclaration validates the constant Declare arguments of one New or
// Must call with the same rules the runtime constructor applies.
func (r *runOptions) checkDeclaration(p *analysis.Pass, call *ast.CallExpr) {
	if len(call.Args) < 1 || call.Ellipsis.IsValid() {
		return
	}

	var tracker maskdef.Tracker

	for _, arg := range call.Args[1:] {
		name, mask, ok := declaredFlag(p, arg)
		if !ok {
			// Not a constant Declare call, so nothing can be proven here.
			continue
		}

		if v := tracker.Check(name, mask); v != maskdef.None {
			p.Reportf(arg.Pos(), "invalid feature flag declaration %q: %s", name, v)
		}
	}
}

// declaredFlag extracts the constant (name, mask) pair from a
// features.Declare call argument.
func declaredFlag(p *analysis.Pass, arg ast.Expr) (string, uint64, bool) {
	call, ok := ast.Unparen(arg).(*ast.CallExpr)
	if !ok || len(call.Args) != 2 {
		return "", 0, false
	}

	fn, ok := typeutil.Callee(p.TypesInfo, call).(*types.Func)
	if !ok || !isFeaturesFunc(fn, "Declare") {
		return "", 0, false
	}

	nameVal := p.TypesInfo.Types[call.Args[0]].Value
	maskVal := p.TypesInfo.Types[call.Args[1]].Value
	if nameVal == nil || nameVal.Kind() != constant.String || maskVal == nil {
		return "", 0, false
	}

	mask, exact := constant.Uint64Val(constant.ToInt(maskVal))
	if !exact {
		return "", 0, false
	}

	return constant.StringVal(nameVal), mask, true
}

// checkVacuousQuery reports Enabled calls whose mask is the constant zero.
func (r *runOptions) checkVacuousQuery(p *analysis.Pass, call *ast.CallExpr) {
	if len(call.Args) != 1 {
		return
	}

	maskVal := p.TypesInfo.Types[call.Args[0]].Value
	if maskVal == nil {
		return
	}

	if mask, exact := constant.Uint64Val(constant.ToInt(maskVal)); exact && mask == 0 {
		p.Reportf(call.Args[0].Pos(), "feature query with zero mask is vacuously true")
	}
}

// isFeaturesFunc reports whether fn is the named package-level function of
// the features package.
func isFeaturesFunc(fn *types.Func, name string) bool {
	if fn.Name() != name || fn.Pkg() == nil || fn.Pkg().Path() != featuresPath {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)

	return ok && sig.Recv() == nil
}

// isFlagSetMethod reports whether fn is the named method of features.FlagSet.
func isFlagSetMethod(fn *types.Func, name string) bool {
	if fn.Name() != name || fn.Pkg() == nil || fn.Pkg().Path() != featuresPath {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	recv := sig.Recv().Type()
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = ptr.Elem()
	}

	named, ok := recv.(*types.Named)

	return ok && named.Obj().Name() == "FlagSet"
}
