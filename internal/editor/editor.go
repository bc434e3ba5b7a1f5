// Package editor launches the operator's text editor on a fixture file.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner opens path with the configured editor command and blocks until
// it exits. Injectable so the resolver is testable without a terminal.
type Runner func(command, path string) error

// Run is the real Runner: the command goes through the shell, as editor
// settings routinely carry arguments ("code -w", "emacsclient -t").
func Run(command, path string) error {
	if command == "" {
		return fmt.Errorf("no editor configured (set --editor or $EDITOR)")
	}

	cmd := exec.Command("sh", "-c", command+" "+shellQuote(path))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor command failed: %w", err)
	}
	return nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
