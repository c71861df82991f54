package flow

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts the chart to Graphviz DOT for a node-link view. Declared
// nodes come first in declaration order, followed by one dashed node per
// dangling id; edges keep chart order and carry their note as a label.
func ToDOT(c Chart, o Options) string {
	d := Layout(c, o)
	fontSize := 14
	if o.Large {
		fontSize = 18
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", d.Title)
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=%d, margin=\"0.2,0.1\"];\n", fontSize)
	fmt.Fprintf(&buf, "  edge [fontsize=%d, fontcolor=\"#64748b\"];\n", fontSize-4)
	buf.WriteString("\n")

	declared := make(map[string]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		if declared[n.ID] {
			continue
		}
		declared[n.ID] = true
		label := n.Label
		if label == "" {
			label = n.ID
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, label)
	}
	for _, r := range d.Rows {
		for _, b := range []Box{r.From, r.To} {
			if b.Fallback && !declared[b.ID] {
				declared[b.ID] = true
				fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", b.ID, b.Label)
			}
		}
	}

	buf.WriteString("\n")
	for _, r := range d.Rows {
		if r.Note != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", r.From.ID, r.To.ID, r.Note)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", r.From.ID, r.To.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based root element with one whose
// width and height match the viewBox, so the SVG scales like the native sinks.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
