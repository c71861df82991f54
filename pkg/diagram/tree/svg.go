package tree

import (
	"bytes"
	"fmt"

	"github.com/kunhq/kundocs/pkg/diagram/icon"
	"github.com/kunhq/kundocs/pkg/diagram/style"
)

const (
	svgPad       = 16.0
	svgRowHeight = 28.0
	svgTitleH    = 32.0
	svgFontSize  = 13.0
	svgDescSize  = 12.0
	svgIconSize  = 16.0
	svgIconGap   = 6.0
	svgDescGap   = 8.0
)

// RenderSVG draws the tree as a standalone SVG document. Every row is
// positioned absolutely and draws only the guide segments that pass through
// it, so there is no separate line-drawing pass.
func RenderSVG(root Node, opts ...Option) []byte {
	o := newOptions(opts...)
	rows := Layout(root)

	top := svgPad
	if o.title != "" {
		top += svgTitleH
	}
	width := svgWidth(rows, o.title)
	height := top + float64(len(rows))*svgRowHeight + svgPad

	var buf bytes.Buffer
	style.OpenSVG(&buf, width, height, "tree")
	if o.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="16" font-weight="600">%s</text>`+"\n",
			svgPad, svgPad+18, style.EscapeXML(o.title))
	}
	for i, r := range rows {
		renderSVGRow(&buf, r, top+float64(i)*svgRowHeight)
	}
	style.CloseSVG(&buf)
	return buf.Bytes()
}

func renderSVGRow(buf *bytes.Buffer, r Row, y float64) {
	mid := y + svgRowHeight/2
	indent := svgPad + float64(r.Depth*UnitWidth)

	fmt.Fprintf(buf, `  <g class="row depth-%d">`+"\n", r.Depth)
	for _, col := range r.Guides {
		x := svgPad + GuideX(col)
		fmt.Fprintf(buf, `    <line class="guide" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x, y, x, y+svgRowHeight)
	}
	if r.Depth > 0 {
		x := svgPad + GuideX(r.Depth)
		end := mid
		if r.Continues {
			end = y + svgRowHeight
		}
		fmt.Fprintf(buf, `    <line class="guide" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x, y, x, end)
		fmt.Fprintf(buf, `    <line class="guide" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x, mid, indent-4, mid)
	}

	icon.WriteSVG(buf, kindIcon(r.Kind), indent, mid-svgIconSize/2, svgIconSize)

	x := indent + svgIconSize + svgIconGap
	weight := "400"
	if r.Kind == KindBranch {
		weight = "600"
	}
	fmt.Fprintf(buf, `    <text class="mono" x="%.1f" y="%.1f" font-size="%.0f" font-weight="%s">%s</text>`+"\n",
		x, mid+4.5, svgFontSize, weight, style.EscapeXML(r.Name))
	if r.Description != "" {
		dx := x + style.TextWidth(r.Name, svgFontSize) + svgDescGap
		fmt.Fprintf(buf, `    <text class="muted" x="%.1f" y="%.1f" font-size="%.0f">— %s</text>`+"\n",
			dx, mid+4.5, svgDescSize, style.EscapeXML(r.Description))
	}
	buf.WriteString("  </g>\n")
}

func svgWidth(rows []Row, title string) float64 {
	w := svgPad + style.TextWidth(title, 16)
	for _, r := range rows {
		end := svgPad + float64(r.Depth*UnitWidth) + svgIconSize + svgIconGap + style.TextWidth(r.Name, svgFontSize)
		if r.Description != "" {
			end += svgDescGap + style.TextWidth("— "+r.Description, svgDescSize)
		}
		w = max(w, end)
	}
	return w + svgPad
}

func kindIcon(k Kind) icon.Name {
	if k == KindBranch {
		return icon.Folder
	}
	return icon.File
}
