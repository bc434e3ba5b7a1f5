package diag

import (
	"fmt"
	"sort"
	"strings"

	"sift/internal/source"
)

type renderedDiagnostic struct {
	Severity string
	Code     string
	Line     uint32
	Column   uint32
	Message  string
}

// Render produces the stable one-line-per-entry representation used both
// for fixture expectation blocks and CLI output:
//
//	<severity> <CODE> <line>:<col> <message>
//
// Entries are sorted deterministically and never carry escape sequences.
func Render(diags []Diagnostic, fs *source.FileSet, includeNotes bool) []string {
	if fs == nil || len(diags) == 0 {
		return nil
	}

	rendered := make([]renderedDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendRendered(rendered, &diags[i], fs, includeNotes)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	out := make([]string, 0, len(rendered))
	for _, d := range rendered {
		out = append(out, fmt.Sprintf("%s %s %d:%d %s", d.Severity, d.Code, d.Line, d.Column, d.Message))
	}
	return out
}

func appendRendered(out []renderedDiagnostic, d *Diagnostic, fs *source.FileSet, includeNotes bool) []renderedDiagnostic {
	start, _ := fs.Resolve(d.Primary)
	out = append(out, renderedDiagnostic{
		Severity: d.Severity.Label(),
		Code:     d.Code.ID(),
		Line:     start.Line,
		Column:   start.Col,
		Message:  sanitizeMessage(d.Message),
	})

	if includeNotes {
		for _, note := range d.Notes {
			nstart, _ := fs.Resolve(note.Span)
			out = append(out, renderedDiagnostic{
				Severity: "note",
				Code:     d.Code.ID(),
				Line:     nstart.Line,
				Column:   nstart.Col,
				Message:  sanitizeMessage(note.Msg),
			})
		}
	}

	return out
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
