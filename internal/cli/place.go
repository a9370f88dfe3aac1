package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/geom"
)

// placeOpts holds the flags of the place command.
type placeOpts struct {
	subject   string
	label     string
	text      string
	container string
	position  string
	offset    float64
	all       bool
	asJSON    bool
}

// placement is one computed label frame.
type placement struct {
	Requested annotate.Position `json:"requested"`
	Position  annotate.Position `json:"position"`
	Frame     geom.Rect         `json:"frame"`
	Fits      bool              `json:"fits"`
}

// placeCommand creates the place command, a direct front end to the
// placement engine.
func (c *CLI) placeCommand() *cobra.Command {
	var opts placeOpts

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where an annotation label goes",
		Long: `Compute the frame of a label placed around a subject rectangle.

Rectangles are given as "x,y,w,h" and sizes as "w,h". The label size can be
given directly with --label or measured from --text. Automatic placement
tries bottom, top and right in that order and falls back to top-right.`,
		Example: `  uithings place --subject 100,100,50,50 --label 80,20 --container 0,0,400,400
  uithings place --subject 100,100,50,50 --text "frame: (100, 100, 50×50)" --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("offset") {
				opts.offset = c.Config.Annotate.Offset
			}
			if opts.container == "" {
				opts.container = fmt.Sprintf("0,0,%g,%g", c.Config.Canvas.Width, c.Config.Canvas.Height)
			}
			return runPlace(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.subject, "subject", "s", "", "subject rect x,y,w,h (required)")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "label size w,h")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "label text, measured when --label is not set")
	cmd.Flags().StringVarP(&opts.container, "container", "c", "", "container rect x,y,w,h (default: the configured canvas)")
	cmd.Flags().StringVarP(&opts.position, "position", "p", "automatic", "automatic, top, bottom, left, right, topLeft, topRight, bottomLeft, bottomRight")
	cmd.Flags().Float64Var(&opts.offset, "offset", annotate.DefaultOffset, "gap between subject and label")
	cmd.Flags().BoolVar(&opts.all, "all", false, "show every position")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func runPlace(opts placeOpts) error {
	subject, err := parseRect(opts.subject)
	if err != nil {
		return fmt.Errorf("--subject: %w", err)
	}
	container, err := parseRect(opts.container)
	if err != nil {
		return fmt.Errorf("--container: %w", err)
	}
	label, err := labelSize(opts.label, opts.text)
	if err != nil {
		return err
	}
	requested, err := annotate.ParsePosition(opts.position)
	if err != nil {
		return err
	}

	positions := []annotate.Position{requested}
	if opts.all {
		positions = annotate.Positions
	}
	results := make([]placement, 0, len(positions))
	for _, pos := range positions {
		p, err := place(subject, label, container, pos, opts.offset)
		if err != nil {
			return err
		}
		results = append(results, p)
	}

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if opts.all {
			return enc.Encode(results)
		}
		return enc.Encode(results[0])
	}

	printKeyValue("subject", formatRect(subject.Standardized()))
	printKeyValue("label", fmt.Sprintf("%g×%g", label.W, label.H))
	printKeyValue("container", formatRect(container.Standardized()))
	printNewline()
	if opts.all {
		fmt.Fprintln(stdout, placementTable(results))
		return nil
	}
	r := results[0]
	printKeyValue("position", positionSummary(r))
	printKeyValue("frame", formatRect(r.Frame))
	if r.Fits {
		printSuccess("label fits inside the container")
	} else {
		printWarning("label extends past the container")
	}
	return nil
}

func place(subject geom.Rect, label geom.Size, container geom.Rect, pos annotate.Position, offset float64) (placement, error) {
	frame, err := annotate.PlaceChecked(subject, label, container, pos, offset)
	if err != nil {
		return placement{}, err
	}
	return placement{
		Requested: pos,
		Position:  annotate.Resolve(subject, label, container, pos, offset),
		Frame:     frame,
		Fits:      container.ContainsRect(frame),
	}, nil
}

func positionSummary(p placement) string {
	if p.Requested == p.Position {
		return p.Position.String()
	}
	return fmt.Sprintf("%s %s %s", p.Requested, iconArrow, p.Position)
}

func placementTable(results []placement) string {
	rows := make([][]string, len(results))
	for i, r := range results {
		fits := "yes"
		if !r.Fits {
			fits = "no"
		}
		rows[i] = []string{r.Requested.String(), r.Position.String(), formatRect(r.Frame), fits}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Requested", "Resolved", "Frame", "Fits").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col == 3 && row >= 0 && row < len(results) {
				if results[row].Fits {
					return base.Foreground(colorGreen)
				}
				return base.Foreground(colorYellow)
			}
			return base.Foreground(colorWhite)
		}).
		Render()
}

// labelSize returns the explicit size if given, else the measured size of
// text.
func labelSize(size, text string) (geom.Size, error) {
	switch {
	case size != "":
		v, err := parseFloats(size, 2)
		if err != nil {
			return geom.Size{}, fmt.Errorf("--label: %w", err)
		}
		return geom.Sz(v[0], v[1]), nil
	case text != "":
		return annotate.MeasureLabel(text, nil), nil
	}
	return geom.Size{}, errors.New(errors.ErrCodeInvalidInput, "either --label or --text is required")
}

// parseRect parses "x,y,w,h".
func parseRect(s string) (geom.Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return geom.Rect{}, err
	}
	return geom.R(v[0], v[1], v[2], v[3]), nil
}

// parseFloats splits s on commas and parses exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad number %q", p)
		}
		out[i] = v
	}
	return out, nil
}

// formatRect prints r exactly, unlike the truncating annotate.FormatRect
// the demo labels use.
func formatRect(r geom.Rect) string {
	return fmt.Sprintf("(%g, %g, %g×%g)", r.X, r.Y, r.W, r.H)
}
