package main

import (
	"os"

	"github.com/spf13/cobra"

	"sift/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sift --testpath <dir>",
	Short: "Interactively maintain syntax-test fixtures",
	Long: `sift walks a tree of syntax-test fixtures, runs each against the
language front end, and for failures offers an interactive menu to edit
the fixture, update its expectations, skip it, or quit the session.`,
	RunE: runRoot,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().String("testpath", "", "path to fixture files (required)")
	rootCmd.Flags().Bool("no-color", false, "don't use colors")
	rootCmd.Flags().String("editor", "", "editor command for opening fixtures (default: $EDITOR)")
	_ = rootCmd.MarkFlagRequired("testpath")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
