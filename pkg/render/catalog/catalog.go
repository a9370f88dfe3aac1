package catalog

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/scene"
)

const rootID = "uithings"

// Options configures catalog diagram generation.
type Options struct {
	// Detailed adds each demo's description under its title.
	Detailed bool
}

// ToDOT converts the demos to Graphviz DOT source. Categories appear in
// [demo.Categories] order and demos in the order given.
func ToDOT(demos []demo.Demo, opts Options) string {
	byCat := make(map[demo.Category][]demo.Demo, len(demo.Categories))
	for _, d := range demos {
		byCat[d.Category] = append(byCat[d.Category], d)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=oval, fillcolor=%q];\n", rootID, "UI Things", "#f2f2f7")
	for _, c := range demo.Categories {
		attrs := []string{
			fmt.Sprintf("label=%q", string(c)),
			fmt.Sprintf("color=%q", scene.Hex(c.Color())),
			fmt.Sprintf("fillcolor=%q", scene.Hex(c.Color())+"33"),
		}
		if len(byCat[c]) == 0 {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", categoryID(c), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range demo.Categories {
		fmt.Fprintf(&buf, "  %q -> %q;\n", rootID, categoryID(c))
		for _, d := range byCat[c] {
			fmt.Fprintf(&buf, "  %q [label=%q];\n", d.ID, fmtLabel(d, opts.Detailed))
			fmt.Fprintf(&buf, "  %q -> %q;\n", categoryID(c), d.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func categoryID(c demo.Category) string { return "category:" + strings.ToLower(string(c)) }

func fmtLabel(d demo.Demo, detailed bool) string {
	if !detailed {
		return d.Title
	}
	return d.Title + "\n" + d.Description
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel-sized one so the diagram scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
