package harness

// Outcome is the tri-state traversal result threaded through every call
// boundary. Quit propagates as an explicit value, never as a panic.
type Outcome int

const (
	// Continue proceeds to the next sibling in traversal order.
	Continue Outcome = iota
	// Abort stops the entire walk immediately (operator quit).
	Abort
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Abort:
		return "abort"
	}
	return "unknown"
}
