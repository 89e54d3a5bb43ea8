// Package analyzers provides all custom static analyzers for dex-core.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/dex-core/tools/dex-lint/analyzers/loopcall"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopcall.Analyzer,
	}
}
