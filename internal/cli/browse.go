package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mapfs-io/mapfs/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the store in a full-screen TUI",
	Long: `Opens a full-screen directory browser over the configured store.
Arrow keys (or j/k) move, enter descends into directories or previews a
file, backspace goes to the parent, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsInteractive() {
			return errors.New("browse requires an interactive terminal")
		}

		fs, _, err := openFilesystem(cmd)
		if err != nil {
			return err
		}
		return tui.RunBrowser(fs)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
