package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sift/internal/config"
	"sift/internal/editor"
	"sift/internal/engine"
	"sift/internal/harness"
	"sift/internal/termio"
)

// runRoot resolves the session configuration, walks the fixture tree,
// and prints the summary. Exit status is 0 only when every attempted
// fixture ended in success.
func runRoot(cmd *cobra.Command, args []string) error {
	testPath, err := cmd.Flags().GetString("testpath")
	if err != nil {
		return fmt.Errorf("failed to get testpath flag: %w", err)
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return fmt.Errorf("failed to get no-color flag: %w", err)
	}
	editorFlag, err := cmd.Flags().GetString("editor")
	if err != nil {
		return fmt.Errorf("failed to get editor flag: %w", err)
	}

	cfg, err := config.Resolve(testPath, noColor, editorFlag, termio.IsTerminal(os.Stdout))
	if err != nil {
		return err
	}

	h := harness.New(
		cfg,
		&engine.Frontend{MaxDiagnostics: engine.DefaultMaxDiagnostics},
		termio.NewTTY(os.Stdin),
		editor.Run,
		os.Stdout,
	)
	h.Run()
	h.Summary()

	if !h.Passed() {
		// Suppress cobra usage output; the report already said it all.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errors.New("")
	}
	return nil
}
