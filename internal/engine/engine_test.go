package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrontendCleanSource(t *testing.T) {
	f := &Frontend{}
	lines, err := f.Analyze("clean.st", []byte("let a = 1;\n"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no diagnostics, got:\n%v", lines)
	}
}

func TestFrontendReportsDiagnostics(t *testing.T) {
	f := &Frontend{}
	lines, err := f.Analyze("bad.st", []byte("let x = 1"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []string{"error SYN2002 1:10 expected ';', found end of file"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestFrontendIncludesNotes(t *testing.T) {
	f := &Frontend{}
	lines, err := f.Analyze("dup.st", []byte("let x = 1;\nlet x = 2;\n"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []string{
		"note SEM3001 1:5 previous declaration here",
		`warning SEM3001 2:5 "x" is already declared in this scope`,
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestFrontendDiagnosticLimit(t *testing.T) {
	f := &Frontend{MaxDiagnostics: 1}
	lines, err := f.Analyze("many.st", []byte("let = 1;\nlet = 2;\n"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected the bag limit to cap output at 1 line, got %d:\n%v", len(lines), lines)
	}
}
