package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/huepick/internal/config"
	"nathanbeddoewebdev/huepick/internal/tui"
	"nathanbeddoewebdev/huepick/internal/util"

	"github.com/spf13/cobra"
)

// runConfigView is swapped in tests.
var runConfigView = tui.RunConfigView

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get a configuration value",
		Long: "Get a persistent configuration value.\n\n" +
			"If no key is provided and running in a terminal, opens an interactive\n" +
			"editor where you can browse and change all settings.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  huepick config get                # interactive editor\n" +
			"  huepick config get clipboard      # print a single value\n" +
			"  huepick config get --key clipboard",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}

	cmd.Flags().String("key", "", "Configuration key to fetch (prints a single value)")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	keyFlag, _ := cmd.Flags().GetString("key")
	if len(args) == 1 {
		keyFlag = args[0]
	}
	keyFlag = strings.TrimSpace(keyFlag)

	if keyFlag == "" {
		if isTerminal() {
			if err := runConfigView(); err != nil {
				return fmt.Errorf("config view failed: %w", err)
			}
			return nil
		}

		// Non-interactive: list all values.
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		for _, spec := range config.Keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", spec.Name, displayValue(spec, cfg))
		}
		return nil
	}

	spec := config.Lookup(util.NormalizeKey(keyFlag))
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", keyFlag, strings.Join(config.KeyNames(), ", "))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), displayValue(*spec, cfg))
	return nil
}

// displayValue shows the stored value, or the default marked as such.
func displayValue(spec config.KeySpec, cfg *config.Config) string {
	if v := spec.Get(cfg); v != "" {
		return v
	}
	return spec.Default() + " (default)"
}
