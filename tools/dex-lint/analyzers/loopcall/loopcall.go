// Package loopcall detects uncached fetches and mode store round trips inside loops.
package loopcall

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports calls inside loops that should happen once per batch or
// go through the bounded fan-out.
var Analyzer = &analysis.Analyzer{
	Name:     "loopcall",
	Doc:      "detects raw fetches, species listing and mode store load/save inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// loopMethods maps method names to the fix suggested in the report.
var loopMethods = map[string]string{
	// ResourceFetcher: typed API accessors share the cache
	"Fetch": "use the typed PokeAPI accessors",
	// PokeAPI listing walks every page
	"ListSpecies": "list once before the loop",
	// ModeStore
	"Load": "load the mapping once before the loop",
	"Save": "save the merged mapping once after the loop",
	// SchemaManager
	"EnsureSchema": "ensure the schema once at startup",
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		// Tests loop over fetches on purpose.
		if strings.HasSuffix(pass.Fset.Position(n.Pos()).Filename, "_test.go") {
			return
		}

		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			// Calls inside a closure run on their own schedule.
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}

			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			if hint, ok := loopMethods[sel.Sel.Name]; ok {
				pass.Reportf(call.Pos(),
					"%s called inside loop - %s",
					sel.Sel.Name, hint)
			}

			return true
		})
	})

	return nil, nil
}
