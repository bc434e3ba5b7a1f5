// Package fixture models one syntax-test file: program source followed
// by a delimiter line and the expected-diagnostics block.
package fixture

import (
	"fmt"
	"os"
	"strings"

	"sift/internal/diag"
)

// Delimiter separates the program source from the expectation block.
const Delimiter = "// ----"

// Ext is the fixture file extension.
const Ext = ".st"

// Fixture is the in-memory form of one test file.
type Fixture struct {
	Name     string   // display identifier, relative to the test root
	Path     string   // absolute location; the only read/write target
	Source   string   // program text, delimiter excluded
	Expected []string // expectation lines, "// " prefix stripped

	// HardFailure is set by the runner when the engine could not
	// produce a diagnostic list for this fixture at all.
	HardFailure bool
}

// Load reads and parses the fixture at path. A file without a delimiter
// expects a clean run. Malformed expectation blocks are load errors.
func Load(name, path string) (*Fixture, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from traversal
	if err != nil {
		return nil, err
	}

	content := normalize(raw)
	src, expected, err := split(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	// The analyzed text must be byte-identical to what a reload sees
	// after Update persists it, or end-of-file positions drift between
	// the run and the re-run.
	if src != "" && !strings.HasSuffix(src, "\n") {
		src += "\n"
	}

	return &Fixture{
		Name:     name,
		Path:     path,
		Source:   src,
		Expected: expected,
	}, nil
}

// Update replaces the persisted file with one snapshot: the original
// source, the delimiter, and the given diagnostic lines. The lines must
// be plain text; callers render them with formatting disabled. The
// in-memory expectations are replaced to match.
func (f *Fixture) Update(actual []string) error {
	var b strings.Builder
	b.WriteString(f.Source)
	if f.Source != "" && !strings.HasSuffix(f.Source, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(Delimiter)
	b.WriteByte('\n')
	for _, line := range actual {
		if line == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(f.Path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("update %s: %w", f.Name, err)
	}
	f.Expected = append([]string(nil), actual...)
	return nil
}

func normalize(raw []byte) string {
	if len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF {
		raw = raw[3:]
	}
	return strings.ReplaceAll(string(raw), "\r\n", "\n")
}

// split cuts the content at the first delimiter line and parses the
// trailing block.
func split(content string) (src string, expected []string, err error) {
	offset := 0
	delimAt := -1
	for _, line := range strings.SplitAfter(content, "\n") {
		if strings.TrimSuffix(line, "\n") == Delimiter {
			delimAt = offset
			break
		}
		offset += len(line)
	}
	if delimAt < 0 {
		return content, nil, nil
	}

	src = content[:delimAt]
	rest := content[delimAt+len(Delimiter):]
	rest = strings.TrimPrefix(rest, "\n")

	lineNo := 0
	for _, line := range strings.Split(rest, "\n") {
		lineNo++
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "//") {
			return "", nil, fmt.Errorf("expectation line %d does not start with %q", lineNo, "//")
		}
		entry := strings.TrimPrefix(strings.TrimPrefix(line, "//"), " ")
		if entry == "" {
			expected = append(expected, "")
			continue
		}
		if err := validateEntry(entry); err != nil {
			return "", nil, fmt.Errorf("expectation line %d: %w", lineNo, err)
		}
		expected = append(expected, entry)
	}
	return src, expected, nil
}

// validateEntry checks the "<severity> <CODE> <line>:<col> <message>" shape.
func validateEntry(entry string) error {
	fields := strings.SplitN(entry, " ", 4)
	if len(fields) < 3 {
		return fmt.Errorf("malformed entry %q", entry)
	}
	if _, ok := diag.ParseSeverity(fields[0]); !ok {
		return fmt.Errorf("unknown severity %q", fields[0])
	}
	pos := fields[2]
	colon := strings.IndexByte(pos, ':')
	if colon <= 0 || colon == len(pos)-1 {
		return fmt.Errorf("malformed position %q", pos)
	}
	for _, part := range []string{pos[:colon], pos[colon+1:]} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return fmt.Errorf("malformed position %q", pos)
			}
		}
	}
	return nil
}
