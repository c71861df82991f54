package flow

import (
	"bytes"
	"fmt"

	"github.com/kunhq/kundocs/pkg/diagram/icon"
	"github.com/kunhq/kundocs/pkg/diagram/style"
)

// RenderSVG draws the chart as a standalone SVG document, one row per edge.
func RenderSVG(c Chart, o Options) []byte {
	d := Layout(c, o)
	p := d.Profile

	boxH := max(p.IconSize, p.LabelSize*1.3) + 2*p.BoxPadY
	top := p.Padding + p.TitleSize + 16
	width := p.Padding + style.TextWidth(d.Title, p.TitleSize)
	for _, r := range d.Rows {
		width = max(width, p.Padding+rowWidth(r, d.ShowIcons, p))
	}
	width += p.Padding
	height := top + float64(len(d.Rows))*(boxH+p.RowGap) - p.RowGap + p.Padding
	if len(d.Rows) == 0 {
		height = top + p.Padding
	}

	var buf bytes.Buffer
	style.OpenSVG(&buf, width, height, "flow flow-"+p.Name)
	fmt.Fprintf(&buf, `  <text class="title" x="%.1f" y="%.1f" font-size="%.0f" font-weight="600">%s</text>`+"\n",
		p.Padding, p.Padding+p.TitleSize, p.TitleSize, style.EscapeXML(d.Title))
	for i, r := range d.Rows {
		y := top + float64(i)*(boxH+p.RowGap)
		renderSVGRow(&buf, i, r, p.Padding, y, boxH, d.ShowIcons, p)
	}
	style.CloseSVG(&buf)
	return buf.Bytes()
}

func renderSVGRow(buf *bytes.Buffer, i int, r Row, x, y, h float64, showIcons bool, p Profile) {
	fmt.Fprintf(buf, `  <g class="edge" data-index="%d">`+"\n", i)
	x = renderSVGBox(buf, r.From, x, y, h, showIcons, p)

	mid := y + h/2
	x += p.IconGap
	end := x + p.ArrowLen
	fmt.Fprintf(buf, `    <path class="arrow" d="M%.1f %.1fH%.1fM%.1f %.1fl4 4-4 4" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		x, mid, end, end-4, mid-4, style.Muted)
	x = end + p.IconGap
	if r.Note != "" {
		fmt.Fprintf(buf, `    <text class="muted note" x="%.1f" y="%.1f" font-size="%.0f">%s</text>`+"\n",
			x, mid+p.NoteSize/3, p.NoteSize, style.EscapeXML(r.Note))
		x += style.TextWidth(r.Note, p.NoteSize) + p.IconGap
	}
	renderSVGBox(buf, r.To, x, y, h, showIcons, p)
	buf.WriteString("  </g>\n")
}

// renderSVGBox draws one endpoint and returns the x coordinate of its right edge.
func renderSVGBox(buf *bytes.Buffer, b Box, x, y, h float64, showIcons bool, p Profile) float64 {
	w := boxWidth(b, showIcons, p)
	class := "box"
	if b.Fallback {
		class += " fallback"
	}
	fmt.Fprintf(buf, `    <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s" stroke="%s"/>`+"\n",
		class, x, y, w, h, style.Surface, style.Border)
	tx := x + p.BoxPadX
	if showIcons {
		icon.WriteSVG(buf, b.Icon, tx, y+(h-p.IconSize)/2, p.IconSize)
		tx += p.IconSize + p.IconGap
	}
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="%.0f">%s</text>`+"\n",
		tx, y+h/2+p.LabelSize/3, p.LabelSize, style.EscapeXML(b.Label))
	return x + w
}

func boxWidth(b Box, showIcons bool, p Profile) float64 {
	w := 2*p.BoxPadX + style.TextWidth(b.Label, p.LabelSize)
	if showIcons {
		w += p.IconSize + p.IconGap
	}
	return w
}

func rowWidth(r Row, showIcons bool, p Profile) float64 {
	w := boxWidth(r.From, showIcons, p) + 2*p.IconGap + p.ArrowLen + boxWidth(r.To, showIcons, p)
	if r.Note != "" {
		w += style.TextWidth(r.Note, p.NoteSize) + p.IconGap
	}
	return w
}
