package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version metadata. These are intended to be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI (e.g., 0.4.0).
	Version = "0.4.0"
	// Commit is the git commit hash of the build.
	Commit = "unknown"
	// Date is the build timestamp (e.g., 2026-08-01T13:45:00Z).
	Date = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the exaroton CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "exaroton %s\n", Version)
		fmt.Fprintf(out, "  commit: %s\n", Commit)
		fmt.Fprintf(out, "  built:  %s\n", Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
