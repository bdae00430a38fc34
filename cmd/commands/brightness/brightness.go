// Package brightness implements the "huepick brightness" command.
package brightness

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"nathanbeddoewebdev/huepick/internal/color"

	"github.com/spf13/cobra"
)

// NewCommand returns the "brightness" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brightness <color>",
		Short: "Show the brightness and contrast text color of a color",
		Long: `Compute the perceptual brightness of a hex color,

  (R*299 + G*587 + B*114) / 1000

and the text color huepick would use on it: black above 150, white
otherwise. The leading '#' is optional.

Input is read leniently by default, so malformed values report NaN.
Use --strict to reject anything that is not a 3- or 6-digit hex color.

Examples:
  huepick brightness "#FF0000"
  huepick brightness 00ff00
  huepick brightness --strict f80`,
		Args:         cobra.ExactArgs(1),
		RunE:         runBrightness,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("strict", false, "Reject malformed colors instead of reporting NaN")

	return cmd
}

func runBrightness(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	c := color.Color(args[0])
	if strict {
		parsed, err := color.Parse(args[0])
		if err != nil {
			return err
		}
		c = parsed
	}

	b := color.Brightness(c)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Color:\t%s\n", c)
	fmt.Fprintf(w, "  Brightness:\t%s\n", strconv.FormatFloat(b, 'f', -1, 64))
	fmt.Fprintf(w, "  Text color:\t%s\n", color.TextColor(c))
	return w.Flush()
}
