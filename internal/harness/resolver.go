package harness

import (
	"fmt"

	"sift/internal/fixture"
)

// resolve is the interactive state machine entered after a failure. It
// blocks on single keystrokes, looping on unrecognized input. The 'u'
// transition is offered only when the engine produced a usable
// diagnostic list; it is the only path that mutates the fixture file.
func (h *Harness) resolve(fx *fixture.Fixture, actual []string) Outcome {
	if fx.HardFailure {
		fmt.Fprint(h.out, "(e)dit/(s)kip/(q)uit? ")
	} else {
		fmt.Fprint(h.out, "(e)dit/(u)pdate expectations/(s)kip/(q)uit? ")
	}

	for {
		ch, err := h.input.ReadChar()
		if err != nil {
			// Input gone (closed pipe, terminal error): nothing left to
			// ask the operator, treat as quit.
			fmt.Fprintln(h.out)
			h.red.Fprintf(h.out, "input closed: %v\n", err)
			return Abort
		}

		switch ch {
		case 's':
			fmt.Fprintln(h.out)
			return Continue

		case 'u':
			if fx.HardFailure {
				continue // no well-formed list to persist
			}
			fmt.Fprintln(h.out)
			if err := fx.Update(actual); err != nil {
				h.red.Fprintf(h.out, "%v\n", err)
				return Continue
			}
			fmt.Fprintln(h.out, "Re-running test case...")
			return h.runFixture(fx.Name, fx.Path)

		case 'e':
			fmt.Fprintln(h.out)
			fmt.Fprintln(h.out)
			if err := h.editor(h.cfg.Editor, fx.Path); err != nil {
				h.red.Fprintf(h.out, "warning: %v\n", err)
				fmt.Fprintln(h.out)
			}
			fmt.Fprintln(h.out, "Re-running test case...")
			return h.runFixture(fx.Name, fx.Path)

		case 'q':
			fmt.Fprintln(h.out)
			return Abort

		default:
			// Unrecognized key: keep waiting.
		}
	}
}
