package config

import (
	"os"

	"nathanbeddoewebdev/huepick/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage huepick preferences",
		Long: "View and modify persistent huepick settings.\n\n" +
			"Configuration is stored at ~/.config/huepick/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}

// isTerminal reports whether interactive prompts can be shown.
// Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
