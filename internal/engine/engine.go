// Package engine adapts the language front end to the narrow contract
// the harness consumes: analyze one source, get back rendered diagnostic
// lines or a hard failure.
package engine

import (
	"fmt"

	"sift/internal/diag"
	"sift/internal/lexer"
	"sift/internal/parser"
	"sift/internal/source"
)

// Analyzer runs the analysis engine over one fixture source.
// The returned lines are the stable rendered diagnostics (empty means a
// clean source). A non-nil error is the hard-failure channel: the engine
// could not produce a usable diagnostic list at all.
type Analyzer interface {
	Analyze(name string, src []byte) ([]string, error)
}

// DefaultMaxDiagnostics bounds the diagnostics collected per fixture.
const DefaultMaxDiagnostics = 100

// Frontend is the built-in Analyzer: lexer + parser over the fixture
// language, diagnostics rendered with notes included.
type Frontend struct {
	MaxDiagnostics int
}

func (f *Frontend) Analyze(name string, src []byte) (lines []string, err error) {
	// An internal panic in the front end must surface as a hard failure,
	// not take down the whole session.
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	maxDiags := f.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}

	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)

	bag := diag.NewBag(maxDiags)
	reporter := diag.BagReporter{Bag: bag}

	p := parser.New(lexer.New(fs.Get(id), reporter), reporter)
	p.ParseFile()

	bag.Sort()
	return diag.Render(bag.Items(), fs, true), nil
}
