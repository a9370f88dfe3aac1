package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/pipeline"
	"github.com/matzehuels/uithings/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file (one demo, one format) or directory
	formats string // comma-separated output formats
	all     bool   // render every demo
	noCache bool   // bypass the cache entirely
	opts    pipeline.Options
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts

	cmd := &cobra.Command{
		Use:   "render [demo-id...]",
		Short: "Render demo scenes to SVG, PNG or JSON",
		Long: `Render one or more demos.

With a single demo and a single format, --output names the file. Otherwise
--output is a directory and files are named <demo>[-<variant>].<format>.`,
		Example: `  uithings render hole-button
  uithings render negative-size -f svg,png -o out/
  uithings render overlapping-shadow --variant separate -o shadow.svg
  uithings render --all -f png --scale 1`,
		ValidArgsFunction: completeDemoIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ro.all {
				args = nil
				for _, d := range demo.All() {
					args = append(args, d.ID)
				}
			}
			if len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "name at least one demo or pass --all")
			}
			if !cmd.Flags().Changed("width") {
				ro.opts.Width = c.Config.Canvas.Width
			}
			if !cmd.Flags().Changed("height") {
				ro.opts.Height = c.Config.Canvas.Height
			}
			if !cmd.Flags().Changed("offset") {
				ro.opts.Offset = c.Config.Annotate.Offset
			}
			ro.opts.Formats = pipeline.ParseFormats(ro.formats)
			if err := pipeline.ValidateFormats(ro.opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args, ro)
		},
	}

	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file or directory (default: current directory)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", render.FormatSVG, "output format(s): "+strings.Join(pipeline.ValidFormats, ", ")+" (comma-separated)")
	cmd.Flags().BoolVar(&ro.all, "all", false, "render every demo")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&ro.opts.Refresh, "refresh", false, "re-render even if cached")
	cmd.Flags().Float64Var(&ro.opts.Width, "width", 0, "canvas width (default from config)")
	cmd.Flags().Float64Var(&ro.opts.Height, "height", 0, "canvas height (default from config)")
	cmd.Flags().Float64Var(&ro.opts.Offset, "offset", 0, "label offset (default from config)")
	cmd.Flags().StringVar(&ro.opts.Variant, "variant", "", "demo variant, e.g. separate for overlapping-shadow")
	cmd.Flags().StringVar(&ro.opts.Text, "text", "", "text typed into the expanding field")
	cmd.Flags().Float64Var(&ro.opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&ro.opts.Title, "title", false, "draw the demo title above the scene")
	cmd.Flags().BoolVar(&ro.opts.NoGrid, "no-grid", false, "omit the graph-paper background")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, ids []string, ro renderOpts) error {
	runner, err := c.newRunner(ctx, ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	single := len(ids) == 1 && len(ro.opts.Formats) == 1
	prog := newProgress(c.Logger)
	for _, id := range ids {
		opts := ro.opts
		opts.DemoID = id
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}

		printSuccess("%s", result.Scene.Title)
		printStats(result.Stats.Elements, result.Stats.Labels, result.CacheInfo.RenderHit)
		for _, format := range opts.Formats {
			path := outputPath(ro.output, id, opts.Variant, format, single)
			if err := writeOutput(path, result.Artifacts[format]); err != nil {
				return err
			}
			printFile(path)
		}
	}
	if len(ids) > 1 {
		prog.done(fmt.Sprintf("Rendered %d demos", len(ids)))
	}
	return nil
}

// outputPath picks the file for one artifact. A single artifact goes to
// output itself when output looks like a file name.
func outputPath(output, id, variant, format string, single bool) string {
	name := id
	if variant != "" {
		name += "-" + variant
	}
	name += "." + format

	if output == "" {
		return name
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if single && ext != "" && !strings.HasSuffix(output, string(filepath.Separator)) {
		return output
	}
	return filepath.Join(output, name)
}

// writeOutput validates path, creates its directory and writes data.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// completeDemoIDs offers demo ids for shell completion.
func completeDemoIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var ids []string
	for _, d := range demo.All() {
		if !slices.Contains(args, d.ID) && strings.HasPrefix(d.ID, toComplete) {
			ids = append(ids, d.ID+"\t"+d.Title)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
