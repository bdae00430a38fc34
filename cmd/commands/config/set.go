package config

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/huepick/internal/config"
	"nathanbeddoewebdev/huepick/internal/tui"
	"nathanbeddoewebdev/huepick/internal/util"

	"github.com/spf13/cobra"
)

// promptConfigValue is swapped in tests.
var promptConfigValue = tui.PromptConfigValue

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [<key> <value>]",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			"Without arguments in a terminal, prompts for the key and value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  huepick config set clipboard osc52\n" +
			"  huepick config set copy-errors silent",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE:         runSet,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("accessible", false, "Use plain prompts suitable for screen readers")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var key, value string
	if len(args) == 2 {
		key, value = args[0], args[1]
	} else {
		if !isTerminal() {
			return errors.New("config set needs <key> <value> when not running in a terminal")
		}
		accessible, _ := cmd.Flags().GetBool("accessible")
		key, value, err = promptConfigValue(accessible, cfg)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted; nothing changed.")
				return nil
			}
			return err
		}
	}

	spec := config.Lookup(util.NormalizeKey(key))
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", key, strings.Join(config.KeyNames(), ", "))
	}

	if err := spec.Validate(value); err != nil {
		return err
	}

	normalized := util.NormalizeKey(value)
	spec.Set(cfg, normalized)
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, normalized)
	return nil
}
