package diag

import (
	"testing"

	"sift/internal/source"
)

func TestRender(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.st", []byte("a\nbb\n"))

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SemaDuplicateSymbol,
			Message:  "later",
			Primary:  source.Span{File: id, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: id, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: id, Start: 3, End: 4}, Msg: "note line"},
			},
		},
	}

	want := []string{
		"error SYN2001 1:1 first line second",
		"warning SEM3001 2:1 later",
		"note SYN2001 2:2 note line",
	}
	got := Render(diags, fs, true)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderWithoutNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.st", []byte("x\n"))

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynExpectSemicolon,
			Message:  "expected ';'",
			Primary:  source.Span{File: id, Start: 0, End: 1},
			Notes:    []Note{{Span: source.Span{File: id, Start: 0, End: 1}, Msg: "hidden"}},
		},
	}
	got := Render(diags, fs, false)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1: %v", len(got), got)
	}
	if got[0] != "error SYN2002 1:1 expected ';'" {
		t.Errorf("unexpected line: %q", got[0])
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(2)
	sp := func(start uint32) source.Span { return source.Span{Start: start, End: start + 1} }

	if !bag.Add(Diagnostic{Severity: SevWarning, Code: SemaDuplicateSymbol, Primary: sp(5)}) {
		t.Fatal("first Add rejected")
	}
	if !bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Primary: sp(1)}) {
		t.Fatal("second Add rejected")
	}
	if bag.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar, Primary: sp(0)}) {
		t.Error("Add over the limit should be rejected")
	}

	bag.Sort()
	items := bag.Items()
	if items[0].Primary.Start != 1 || items[1].Primary.Start != 5 {
		t.Errorf("unexpected order after Sort: %v", items)
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Error("HasErrors/HasWarnings should both be true")
	}
}

func TestBagLimitClamped(t *testing.T) {
	if NewBag(-1).Add(Diagnostic{}) {
		t.Error("a negative limit should accept nothing")
	}
	if !NewBag(1 << 16).Add(Diagnostic{}) {
		t.Error("an oversized limit should not wrap to zero")
	}
}
