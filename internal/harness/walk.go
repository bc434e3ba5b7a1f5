package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sift/internal/fixture"
)

// Run walks the whole configured test root.
func (h *Harness) Run() Outcome {
	return h.Walk("")
}

// Walk visits rel under the test root. Directories recurse in the order
// os.ReadDir yields their entries; the first child that aborts stops
// iteration and propagates immediately. For a fixture file, one run is
// counted and the runner takes over.
func (h *Harness) Walk(rel string) Outcome {
	full := filepath.Join(h.cfg.TestPath, rel)
	info, err := os.Stat(full)
	if err != nil {
		h.red.Fprintf(h.out, "cannot access %s: %v\n", displayName(rel), err)
		return Continue
	}

	if !info.IsDir() {
		h.runCount++
		return h.runFixture(displayName(rel), full)
	}

	entries, err := os.ReadDir(full)
	if err != nil {
		h.red.Fprintf(h.out, "cannot read directory %s: %v\n", displayName(rel), err)
		return Continue
	}
	for _, entry := range entries {
		if !entry.IsDir() && !strings.HasSuffix(entry.Name(), fixture.Ext) {
			continue
		}
		if h.Walk(filepath.Join(rel, entry.Name())) == Abort {
			return Abort
		}
	}
	return Continue
}

func displayName(rel string) string {
	if rel == "" {
		return "."
	}
	return filepath.ToSlash(rel)
}

// ListFixtures enumerates fixture files under root in traversal order
// without running anything.
func ListFixtures(root string) ([]string, error) {
	var out []string
	var visit func(rel string) error
	visit = func(rel string) error {
		full := filepath.Join(root, rel)
		info, err := os.Stat(full)
		if err != nil {
			return fmt.Errorf("cannot access %s: %w", displayName(rel), err)
		}
		if !info.IsDir() {
			out = append(out, displayName(rel))
			return nil
		}
		entries, err := os.ReadDir(full)
		if err != nil {
			return fmt.Errorf("cannot read directory %s: %w", displayName(rel), err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && !strings.HasSuffix(entry.Name(), fixture.Ext) {
				continue
			}
			if err := visit(filepath.Join(rel, entry.Name())); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(""); err != nil {
		return nil, err
	}
	return out, nil
}
