package cmd

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/huepick/cmd/commands/brightness"
	cfgcmd "nathanbeddoewebdev/huepick/cmd/commands/config"
	"nathanbeddoewebdev/huepick/cmd/commands/random"
	"nathanbeddoewebdev/huepick/internal/clipboard"
	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/config"
	"nathanbeddoewebdev/huepick/internal/logging"
	"nathanbeddoewebdev/huepick/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var logFile string
	var verbose bool
	var closeLog func() error

	var cmd = &cobra.Command{
		Use:   "huepick",
		Short: "A random color picker for the terminal",
		Long: `huepick shows a random background color with its hex code, picks black or
white text for contrast, and copies the code to your clipboard.

In a terminal it opens a full-window picker: press space to roll a new
color and c to copy it, or click the buttons with the mouse. Outside a
terminal it prints a single random color.

Quick start:
  huepick                          # open the picker
  huepick random --count 5         # print five colors
  huepick brightness "#FF8800"     # show brightness and text color
  huepick config set clipboard osc52`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := logging.New(logFile, verbose)
			if err != nil {
				return err
			}
			closeLog = closer.Close
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: runPicker,
	}

	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append debug logs to this file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug events (requires --log-file)")

	cmd.AddCommand(brightness.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(random.NewCommand())

	return cmd
}

// stdoutIsTerminal is swapped in tests.
var stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

func runPicker(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		fmt.Fprintln(cmd.OutOrStdout(), color.Generate(nil))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clip, err := clipboard.New(cfg.ClipboardMode(), os.Stdout)
	if err != nil {
		return err
	}

	if err := tui.RunPicker(tui.PickerOptions{
		Clipboard:      clip,
		ClipboardMode:  cfg.ClipboardMode(),
		ShowCopyErrors: cfg.ShowCopyErrors(),
		Logger:         logging.FromContext(cmd.Context()),
	}); err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
