// Package random implements the "huepick random" command.
package random

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/logging"

	"github.com/spf13/cobra"
)

// maxCount bounds --count so a typo cannot flood the terminal.
const maxCount = 10000

// source is swapped in tests for deterministic output.
var source color.Source = color.DefaultSource()

// Entry is the JSON form of one generated color.
type Entry struct {
	Hex        string  `json:"hex"`
	Brightness float64 `json:"brightness"`
	TextColor  string  `json:"text_color"`
	RGB        [3]int  `json:"rgb"`
}

// NewCommand returns the "random" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print random colors",
		Long: `Print one or more random colors in #RRGGBB form.

Examples:
  huepick random
  huepick random --count 5
  huepick random -n 3 -o json`,
		Args:         cobra.NoArgs,
		RunE:         runRandom,
		SilenceUsage: true,
	}

	cmd.Flags().IntP("count", "n", 1, "Number of colors to generate")
	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return cmd
}

func runRandom(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	output, _ := cmd.Flags().GetString("output")

	if count < 1 || count > maxCount {
		return fmt.Errorf("--count must be between 1 and %d, got %d", maxCount, count)
	}

	colors := make([]color.Color, count)
	for i := range colors {
		colors[i] = color.Generate(source)
	}
	logging.FromContext(cmd.Context()).Debug("generated colors", slog.Int("count", count))

	switch output {
	case "text":
		for _, c := range colors {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	case "json":
		return printJSON(cmd, colors)
	default:
		return fmt.Errorf("unsupported output format %q (valid: text, json)", output)
	}
}

func printJSON(cmd *cobra.Command, colors []color.Color) error {
	entries := make([]Entry, 0, len(colors))
	for _, c := range colors {
		info, err := color.Describe(c)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Hex:        c.String(),
			Brightness: color.Brightness(c),
			TextColor:  color.TextColor(c).String(),
			RGB:        [3]int{int(info.R), int(info.G), int(info.B)},
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
