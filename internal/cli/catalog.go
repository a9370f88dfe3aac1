package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/uithings/pkg/pipeline"
	"github.com/matzehuels/uithings/pkg/render"
)

// catalogCommand creates the catalog command, which draws the registry as
// a category diagram with Graphviz.
func (c *CLI) catalogCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Draw the demo catalog as a diagram",
		Example: `  uithings catalog -o catalog.svg
  uithings catalog -f dot | dot -Tpdf > catalog.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Rendering catalog...")
			if format != pipeline.CatalogFormatDOT {
				spinner.Start()
			}
			data, cached, err := runner.Catalog(cmd.Context(), format, detailed, refresh)
			if format != pipeline.CatalogFormatDOT {
				spinner.Stop()
			}
			if err != nil {
				return err
			}

			if output == "" {
				if format == render.FormatPNG {
					return fmt.Errorf("refusing to write PNG to the terminal, use --output")
				}
				_, err := stdout.Write(data)
				return err
			}
			if err := writeOutput(output, data); err != nil {
				return err
			}
			printSuccess("Catalog diagram")
			printStats(0, 0, cached)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", render.FormatSVG, "svg, png or dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include demo descriptions in the nodes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even if cached")

	return cmd
}
