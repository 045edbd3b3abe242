package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mapfs-io/mapfs/internal/shell"
)

var execCommands []string

var execCmd = &cobra.Command{
	Use:   "exec",
	Short: "Execute shell commands non-interactively",
	Long: `Executes one or more shell command lines against the configured store
and flushes pending changes afterwards.

Examples:
  mapfs exec -c "mkdir /docs" -c "touch /docs/a.txt"
  mapfs exec -c "ls /"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, _, err := openFilesystem(cmd)
		if err != nil {
			return err
		}

		interpreter := shell.NewInterpreter(fs, os.Stdout)
		for _, line := range execCommands {
			if !interpreter.Execute(line) {
				break
			}
		}
		return fs.Flush()
	},
}

func init() {
	execCmd.Flags().StringArrayVarP(&execCommands, "command", "c", nil, "Command line to execute (repeatable)")
	execCmd.MarkFlagRequired("command") //nolint:errcheck
	rootCmd.AddCommand(execCmd)
}
