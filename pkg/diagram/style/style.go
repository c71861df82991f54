// Package style holds the palette, font metrics and writers shared by the
// diagram sinks.
//
// SVG output uses the hex palette and [OpenSVG]/[CloseSVG]. Terminal output
// goes through [Terminal], which wraps lipgloss styles and can be switched to
// plain mode for pipes and golden tests.
package style

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// SVG palette.
const (
	Foreground = "#0f172a"
	Muted      = "#64748b"
	Border     = "#cbd5e1"
	Surface    = "#ffffff"
	Subtle     = "#f8fafc"
	Accent     = "#0d9488"
)

// Fonts used by the SVG and HTML sinks.
const (
	MonoFamily = `ui-monospace, SFMono-Regular, Menlo, Consolas, monospace`
	SansFamily = `ui-sans-serif, system-ui, -apple-system, "Segoe UI", sans-serif`
)

const charWidth = 0.6

// TextWidth estimates the rendered width of s at the given font size.
// The estimate assumes a monospace advance and is used only for box sizing.
func TextWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * charWidth
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// OpenSVG writes the root element and the shared stylesheet.
func OpenSVG(buf *bytes.Buffer, w, h float64, class string) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" class="%s" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		class, w, h, w, h)
	fmt.Fprintf(buf, "  <style>\n    text { font-family: %s; fill: %s; }\n    .muted { fill: %s; }\n    .mono { font-family: %s; }\n    .guide { stroke: %s; stroke-width: 1; }\n    .icon { color: %s; }\n  </style>\n",
		SansFamily, Foreground, Muted, MonoFamily, Border, Muted)
	fmt.Fprintf(buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", Surface)
}

// CloseSVG terminates a document started by [OpenSVG].
func CloseSVG(buf *bytes.Buffer) {
	buf.WriteString("</svg>\n")
}

var (
	colorTeal = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
)

// Terminal renders styled fragments for text sinks.
type Terminal struct {
	plain  bool
	strong lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
	box    lipgloss.Style
}

// NewTerminal returns terminal styles. In plain mode every helper returns its
// input unchanged and boxes keep their rounded border but drop color.
func NewTerminal(plain bool) Terminal {
	t := Terminal{
		plain:  plain,
		strong: lipgloss.NewStyle().Bold(true),
		muted:  lipgloss.NewStyle().Foreground(colorDim),
		accent: lipgloss.NewStyle().Foreground(colorTeal),
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorGray).Padding(0, 1),
	}
	if plain {
		t.box = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	}
	return t
}

// Plain reports whether styling is disabled.
func (t Terminal) Plain() bool { return t.plain }

// Strong renders s in bold.
func (t Terminal) Strong(s string) string { return t.apply(t.strong, s) }

// Muted renders s dimmed.
func (t Terminal) Muted(s string) string { return t.apply(t.muted, s) }

// Accent renders s in the accent color.
func (t Terminal) Accent(s string) string { return t.apply(t.accent, s) }

// Box draws s inside a rounded border, padded by one column on each side.
func (t Terminal) Box(s string) string { return t.box.Render(s) }

// BoxPadded is [Terminal.Box] with explicit vertical and horizontal padding.
func (t Terminal) BoxPadded(s string, v, h int) string {
	return t.box.Padding(v, h).Render(s)
}

func (t Terminal) apply(st lipgloss.Style, s string) string {
	if t.plain || s == "" {
		return s
	}
	return st.Render(s)
}
