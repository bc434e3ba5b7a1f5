// Package harness drives the fixture walk: it discovers fixtures under
// the test root, runs each against the analysis engine, and on failure
// hands control to the interactive resolver.
package harness

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sift/internal/config"
	"sift/internal/editor"
	"sift/internal/engine"
	"sift/internal/termio"
)

// nameColumn is where the OK/FAIL verdict starts in the report stream.
const nameColumn = 40

// Harness owns the session: the immutable configuration, the injected
// collaborators, and the run/success counters.
type Harness struct {
	cfg    config.Config
	eng    engine.Analyzer
	input  termio.Input
	editor editor.Runner
	out    io.Writer

	runCount     int
	successCount int

	bold       *color.Color
	green      *color.Color
	red        *color.Color
	cyan       *color.Color
	dim        *color.Color
	inverseRed *color.Color
}

func New(cfg config.Config, eng engine.Analyzer, input termio.Input, ed editor.Runner, out io.Writer) *Harness {
	return &Harness{
		cfg:        cfg,
		eng:        eng,
		input:      input,
		editor:     ed,
		out:        out,
		bold:       newStyle(cfg.Color, color.Bold),
		green:      newStyle(cfg.Color, color.FgGreen),
		red:        newStyle(cfg.Color, color.FgRed),
		cyan:       newStyle(cfg.Color, color.FgCyan),
		dim:        newStyle(cfg.Color, color.Faint),
		inverseRed: newStyle(cfg.Color, color.FgRed, color.ReverseVideo),
	}
}

func newStyle(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Counts returns the session counters: fixtures attempted and fixtures
// whose final outcome was success.
func (h *Harness) Counts() (run, success int) {
	return h.runCount, h.successCount
}

// Passed reports whether every attempted fixture ended in success.
func (h *Harness) Passed() bool {
	return h.successCount == h.runCount
}

// Summary prints the final success ratio, green iff everything passed.
func (h *Harness) Summary() {
	fmt.Fprintf(h.out, "\nSummary: ")
	style := h.red
	if h.Passed() {
		style = h.green
	}
	style.Fprintf(h.out, "%d/%d", h.successCount, h.runCount)
	fmt.Fprintln(h.out, " tests successful.")
}

func (h *Harness) announce(name string) {
	h.bold.Fprintf(h.out, "%s:", name)
	pad := nameColumn - runewidth.StringWidth(name) - 1
	if pad < 1 {
		pad = 1
	}
	fmt.Fprint(h.out, strings.Repeat(" ", pad))
}
