package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label returns the lower-case form used in rendered diagnostic lines
// and fixture expectation blocks.
func (s Severity) Label() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

// ParseSeverity maps a rendered label back to a Severity.
func ParseSeverity(label string) (Severity, bool) {
	switch label {
	case "error":
		return SevError, true
	case "warning":
		return SevWarning, true
	case "info", "note":
		return SevInfo, true
	}
	return SevInfo, false
}
