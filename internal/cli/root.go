// Package cli wires the mapfs commands: an interactive shell, a one-shot
// command runner, a TUI browser and version info.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mapfs",
	Short: "Hierarchical filesystem over a flat key-value store",
	Long: asciiLogo + `

mapfs presents directories and files on top of any flat string key-value
store: in-memory, a local JSON file, a PostgreSQL table or an S3 bucket.
Every path is a key; the hierarchy is derived, never stored.

Configure the backing store in mapfs.yaml, then browse it, script it or
explore it interactively.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Store connection failed
  12 - Flush failed
  13 - Store contents corrupt`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for mapfs")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringP("source", "s", ".", "Directory holding mapfs.yaml")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
