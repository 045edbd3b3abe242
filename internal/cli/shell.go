package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mapfs-io/mapfs/internal/shell"
	"github.com/mapfs-io/mapfs/internal/tui"
	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run an interactive shell over the configured store",
	Long: `Starts a read-eval-print loop over the configured store. Type "help"
for the command list, "flush" to persist pending changes and "exit" to
leave. Piped input is executed line by line without a prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, _, err := openFilesystem(cmd)
		if err != nil {
			return err
		}
		return runShell(fs)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(fs *mapfs.Filesystem) error {
	interactive := tui.IsInteractive()
	interpreter := shell.NewInterpreter(fs, os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			fmt.Print(tui.PromptStyle.Render("mapfs:"+fs.Pwd()) + "> ")
		}
		if !scanner.Scan() {
			break
		}
		if !interpreter.Execute(scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	// Do not lose work typed into the session.
	return fs.Flush()
}
