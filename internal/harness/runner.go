package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"

	"sift/internal/fixture"
)

// runFixture is one attempt at a fixture: announce, load, analyze,
// verdict. Resolutions that change the file re-enter here so the fixture
// is always reconstructed from disk before a re-run. The run counter is
// the walker's business; retries never touch it.
func (h *Harness) runFixture(name, path string) Outcome {
	h.announce(name)

	fx, err := fixture.Load(name, path)
	if err != nil {
		// An unreadable fixture is an authoring problem, not a
		// regression: report it and move on without a prompt.
		h.red.Fprintf(h.out, "cannot read test: %v\n", err)
		return Continue
	}

	actual, hardErr := h.eng.Analyze(fx.Name, []byte(fx.Source))
	fx.HardFailure = hardErr != nil

	if hardErr == nil && slices.Equal(actual, fx.Expected) {
		h.green.Fprint(h.out, "OK")
		fmt.Fprintln(h.out)
		h.successCount++
		return Continue
	}

	h.red.Fprint(h.out, "FAIL")
	fmt.Fprintln(h.out)

	fmt.Fprintln(h.out, "  Source:")
	h.printSource(fx)

	if fx.HardFailure {
		fmt.Fprint(h.out, "  ")
		h.inverseRed.Fprint(h.out, "analysis failed:")
		fmt.Fprintln(h.out)
		fmt.Fprintf(h.out, "    %v\n", hardErr)
		fmt.Fprintln(h.out)
	} else {
		h.printDiagnostics(fx, actual)
	}

	return h.resolve(fx, actual)
}

func (h *Harness) printSource(fx *fixture.Fixture) {
	for _, line := range strings.Split(strings.TrimRight(fx.Source, "\n"), "\n") {
		h.cyan.Fprintf(h.out, "    %s\n", line)
	}
}

func (h *Harness) printDiagnostics(fx *fixture.Fixture, actual []string) {
	fmt.Fprintln(h.out, "  Diagnostics:")
	if len(actual) == 0 {
		h.dim.Fprintln(h.out, "    (none)")
	}
	for _, line := range actual {
		fmt.Fprintf(h.out, "    %s\n", line)
	}
	if diff := cmp.Diff(fx.Expected, actual); diff != "" {
		h.dim.Fprintln(h.out, "  diff (-expected +actual):")
		for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
			h.dim.Fprintf(h.out, "    %s\n", line)
		}
	}
	fmt.Fprintln(h.out)
}
