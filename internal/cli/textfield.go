package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/scene"
)

// textfieldCommand creates the textfield command. It lays out text in the
// expanding field and prints the eased height transition from an earlier
// text.
func (c *CLI) textfieldCommand() *cobra.Command {
	var (
		text  string
		from  string
		width float64
		fps   int
	)

	cmd := &cobra.Command{
		Use:   "textfield",
		Short: "Show how the expanding text field grows",
		Example: `  uithings textfield --text "one\ntwo\nthree"
  uithings textfield --from "short" --text "a much longer line that wraps at least once" --fps 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--fps must be positive")
			}
			if !cmd.Flags().Changed("width") {
				width = c.Config.Canvas.Width
			}
			text = unescapeNewlines(text)
			from = unescapeNewlines(from)

			field := demo.ExpandingField(width, text)
			before := demo.ExpandingField(width, from)

			printKeyValue("width", fmt.Sprintf("%g", field.Width))
			printKeyValue("paragraphs", fmt.Sprintf("%d", field.Paragraphs()))
			printKeyValue("lines", fmt.Sprintf("%d", len(field.Lines())))
			printKeyValue("height", fmt.Sprintf("%g", field.Height()))
			printNewline()
			for _, line := range field.Lines() {
				fmt.Fprintln(stdout, "  "+StyleDim.Render("│")+" "+line)
			}
			printNewline()

			samples := scene.Grow(before.Height(), field.Height()).Sample(fps)
			printInfo("%g %s %g over %s (%d frames)", before.Height(), iconArrow, field.Height(), scene.GrowDuration, len(samples))
			printDetail("%s", formatSamples(samples))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", demo.DefaultFieldText, `field text ("\n" starts a paragraph)`)
	cmd.Flags().StringVar(&from, "from", "", "text before the edit, the starting height")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width (default from config)")
	cmd.Flags().IntVar(&fps, "fps", 60, "frames per second for the height tween")

	return cmd
}

// unescapeNewlines turns the two characters `\n` into a newline so
// paragraphs can be typed on the command line.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func formatSamples(v []float64) string {
	parts := make([]string, len(v))
	for i, h := range v {
		parts[i] = fmt.Sprintf("%.1f", h)
	}
	return strings.Join(parts, " ")
}
