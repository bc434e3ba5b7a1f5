package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sift/internal/harness"
)

var listCmd = &cobra.Command{
	Use:   "list --testpath <dir>",
	Short: "List discovered fixtures in traversal order without running them",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("testpath", "", "path to fixture files (required)")
	_ = listCmd.MarkFlagRequired("testpath")
}

func runList(cmd *cobra.Command, args []string) error {
	testPath, err := cmd.Flags().GetString("testpath")
	if err != nil {
		return fmt.Errorf("failed to get testpath flag: %w", err)
	}

	fixtures, err := harness.ListFixtures(testPath)
	if err != nil {
		return err
	}
	for _, name := range fixtures {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
