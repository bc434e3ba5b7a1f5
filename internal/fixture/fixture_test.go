package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case"+Ext)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithExpectations(t *testing.T) {
	path := writeFixture(t, "let x = 1\n"+
		"// ----\n"+
		"// error SYN2002 1:10 expected ';', found end of file\n")

	fx, err := Load("case.st", path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1\n", fx.Source)
	assert.Equal(t, []string{"error SYN2002 1:10 expected ';', found end of file"}, fx.Expected)
	assert.False(t, fx.HardFailure)
}

func TestLoadWithoutDelimiterExpectsClean(t *testing.T) {
	path := writeFixture(t, "let x = 1;\n")

	fx, err := Load("case.st", path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", fx.Source)
	assert.Empty(t, fx.Expected)
}

func TestLoadEmptyExpectationBlock(t *testing.T) {
	path := writeFixture(t, "let x = 1;\n// ----\n")

	fx, err := Load("case.st", path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", fx.Source)
	assert.Empty(t, fx.Expected)
}

func TestLoadMalformedExpectationLine(t *testing.T) {
	cases := []struct {
		name  string
		block string
	}{
		{"no comment prefix", "error SYN2002 1:1 boom\n"},
		{"unknown severity", "// fatal SYN2002 1:1 boom\n"},
		{"bad position", "// error SYN2002 banana boom\n"},
		{"truncated entry", "// error\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, "let x = 1;\n// ----\n"+tc.block)
			_, err := Load("case.st", path)
			assert.Error(t, err)
		})
	}
}

func TestLoadAddsMissingFinalNewline(t *testing.T) {
	path := writeFixture(t, "let x = 1")

	fx, err := Load("case.st", path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1\n", fx.Source)

	// After an update the source round-trips unchanged, so positions in
	// the persisted expectations stay valid on reload.
	require.NoError(t, fx.Update([]string{"error SYN2002 2:1 expected ';', found end of file"}))
	again, err := Load("case.st", path)
	require.NoError(t, err)
	assert.Equal(t, fx.Source, again.Source)
	assert.Equal(t, fx.Expected, again.Expected)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("gone.st", filepath.Join(t.TempDir(), "gone.st"))
	assert.Error(t, err)
}

func TestUpdateRewritesSnapshot(t *testing.T) {
	path := writeFixture(t, "let x = 1\n"+
		"// ----\n"+
		"// error SYN2002 1:1 stale entry\n")

	fx, err := Load("case.st", path)
	require.NoError(t, err)

	actual := []string{"error SYN2002 1:10 expected ';', found end of file"}
	require.NoError(t, fx.Update(actual))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1\n"+
		"// ----\n"+
		"// error SYN2002 1:10 expected ';', found end of file\n",
		string(content))
	assert.Equal(t, actual, fx.Expected)

	// Reloading the rewritten file must reproduce the same fixture:
	// the update action is idempotent.
	again, err := Load("case.st", path)
	require.NoError(t, err)
	assert.Equal(t, fx.Source, again.Source)
	assert.Equal(t, actual, again.Expected)
}

func TestUpdateWithNoDiagnostics(t *testing.T) {
	path := writeFixture(t, "let x = 1;\n"+
		"// ----\n"+
		"// error SYN2002 1:1 stale entry\n")

	fx, err := Load("case.st", path)
	require.NoError(t, err)
	require.NoError(t, fx.Update(nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n// ----\n", string(content))
}

func TestUpdateNeverWritesEscapeSequences(t *testing.T) {
	path := writeFixture(t, "let x = 1\n")

	fx, err := Load("case.st", path)
	require.NoError(t, err)
	require.NoError(t, fx.Update([]string{"error SYN2002 1:10 expected ';'"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.ContainsRune(string(content), 0x1b),
		"persisted fixtures must stay free of color escapes")
}

func TestLoadNormalizesCRLF(t *testing.T) {
	path := writeFixture(t, "let x = 1;\r\n// ----\r\n")

	fx, err := Load("case.st", path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", fx.Source)
}
