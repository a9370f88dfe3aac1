package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/scene"
)

// hitResult explains one hit test against the hole button.
type hitResult struct {
	Point  geom.Point // in the button's parent coordinates
	Local  geom.Point // in the button's own coordinates
	Hit    bool
	Reason string
}

func hitTest(b scene.HoleButton, p geom.Point) hitResult {
	local := p.Sub(b.Frame.Origin())
	r := hitResult{Point: p, Local: local, Hit: b.HitTest(p)}
	switch {
	case !b.Bounds().ContainsPoint(local):
		r.Reason = "outside the button"
	case local.Dist(b.Bounds().Center()) <= b.HoleRadius:
		r.Reason = "inside the hole"
	default:
		r.Reason = "on the button"
	}
	return r
}

// hittestCommand creates the hittest command, which probes the hole-button
// demo's touch mask.
func (c *CLI) hittestCommand() *cobra.Command {
	var (
		local bool
		step  float64
		draw  bool
	)

	cmd := &cobra.Command{
		Use:   "hittest [x y]",
		Short: "Test touches against the hole button",
		Long: `Report whether a touch at (x, y) reaches the hole-button demo's button.

Coordinates are in the scene unless --local is set. With --map an ASCII map
of the mask is printed instead: '#' receives touches, '.' does not.`,
		Example: `  uithings hittest 200 300
  uithings hittest 10 10 --local
  uithings hittest --map --step 20`,
		Args: func(cmd *cobra.Command, args []string) error {
			if draw {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			btn := demo.HoleButton()
			if draw {
				if step <= 0 {
					return errors.New(errors.ErrCodeInvalidInput, "--step must be positive")
				}
				fmt.Fprint(stdout, hitMap(btn, step))
				return nil
			}

			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "bad x %q", args[0])
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "bad y %q", args[1])
			}
			p := geom.Pt(x, y)
			if local {
				p = p.Add(btn.Frame.Origin())
			}

			r := hitTest(btn, p)
			printKeyValue("button", formatRect(btn.Frame))
			printKeyValue("hole", fmt.Sprintf("radius %g", btn.HoleRadius))
			printKeyValue("point", fmt.Sprintf("(%g, %g)", r.Point.X, r.Point.Y))
			printKeyValue("local", fmt.Sprintf("(%g, %g)", r.Local.X, r.Local.Y))
			if r.Hit {
				printSuccess("hit: %s", r.Reason)
			} else {
				printInfo("miss: %s", r.Reason)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "coordinates are relative to the button")
	cmd.Flags().BoolVar(&draw, "map", false, "print an ASCII map of the touch mask")
	cmd.Flags().Float64Var(&step, "step", 10, "map sampling step in points")

	return cmd
}

// hitMap samples the button's local bounds at cell centres.
func hitMap(b scene.HoleButton, step float64) string {
	bounds := b.Bounds()
	var sb strings.Builder
	for y := step / 2; y < bounds.H; y += step {
		for x := step / 2; x < bounds.W; x += step {
			if b.PointInside(geom.Pt(x, y)) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
