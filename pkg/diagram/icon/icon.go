// Package icon provides the symbolic markers drawn next to diagram labels.
//
// Icons are referenced by [Name]. Each known name has a terminal glyph and an
// SVG path drawn on a 24x24 grid. Unknown or empty names resolve through
// [Resolve] to a caller-supplied default, so a typo in a literal diagram never
// breaks rendering.
package icon

import (
	"bytes"
	"fmt"
)

// Name identifies an icon.
type Name string

// Known icons.
const (
	ArrowRight      Name = "arrow-right"
	Cloud           Name = "cloud"
	Container       Name = "container"
	CreditCard      Name = "credit-card"
	File            Name = "file"
	Folder          Name = "folder"
	Globe           Name = "globe"
	Layers          Name = "layers"
	LayoutPanelLeft Name = "layout-panel-left"
	Server          Name = "server"
	Shield          Name = "shield"
	Terminal        Name = "terminal"
	Users           Name = "users"
)

// Defaults used by flow charts when a node is missing or has no icon.
const (
	DefaultFrom = LayoutPanelLeft
	DefaultTo   = Layers
)

type glyph struct {
	text string
	path string
}

var glyphs = map[Name]glyph{
	ArrowRight:      {"→", "M5 12h14M12 5l7 7-7 7"},
	Cloud:           {"☁", "M17.5 19H9a7 7 0 1 1 6.71-9h1.79a4.5 4.5 0 1 1 0 9Z"},
	Container:       {"▣", "M22 7.7 12 2 2 7.7v8.6L12 22l10-5.7ZM2 7.7l10 5.7 10-5.7M12 22V13.4"},
	CreditCard:      {"▭", "M2 5h20v14H2ZM2 10h20"},
	File:            {"▤", "M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8ZM14 2v6h6"},
	Folder:          {"▸", "M20 20a2 2 0 0 0 2-2V8a2 2 0 0 0-2-2h-7.9L9.4 3H4a2 2 0 0 0-2 2v13a2 2 0 0 0 2 2Z"},
	Globe:           {"◍", "M12 2a10 10 0 1 0 0 20 10 10 0 1 0 0-20ZM2 12h20M12 2a15 15 0 0 1 0 20 15 15 0 0 1 0-20"},
	Layers:          {"≋", "M12 2 2 7l10 5 10-5ZM2 17l10 5 10-5M2 12l10 5 10-5"},
	LayoutPanelLeft: {"▥", "M3 3h7v18H3ZM14 3h7v7h-7ZM14 14h7v7h-7Z"},
	Server:          {"▦", "M2 2h20v8H2ZM2 14h20v8H2ZM6 6h.01M6 18h.01"},
	Shield:          {"⛨", "M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10Z"},
	Terminal:        {"❯", "M4 17l6-6-6-6M12 19h8"},
	Users:           {"☺", "M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2M9 7a4 4 0 1 0 0 .01M22 21v-2a4 4 0 0 0-3-3.87M16 3.13a4 4 0 0 1 0 7.75"},
}

// Known reports whether n names a registered icon.
func (n Name) Known() bool {
	_, ok := glyphs[n]
	return ok
}

// Resolve returns n when it is a known icon, otherwise def.
func Resolve(n, def Name) Name {
	if n.Known() {
		return n
	}
	return def
}

// Glyph returns the single-character terminal marker for n.
// Unknown names yield a neutral bullet.
func Glyph(n Name) string {
	if g, ok := glyphs[n]; ok {
		return g.text
	}
	return "•"
}

// Names returns all known icon names.
func Names() []Name {
	out := make([]Name, 0, len(glyphs))
	for n := range glyphs {
		out = append(out, n)
	}
	return out
}

// Inline returns icon n as a standalone <svg> element for embedding in HTML.
// Unknown names yield an empty string.
func Inline(n Name, size int) string {
	g, ok := glyphs[n]
	if !ok {
		return ""
	}
	return fmt.Sprintf(`<svg class="icon icon-%s" xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="%s"/></svg>`,
		n, size, size, g.path)
}

// WriteSVG draws icon n as a stroked path scaled to size and placed with its
// top-left corner at (x, y). Unknown names draw nothing.
func WriteSVG(buf *bytes.Buffer, n Name, x, y, size float64) {
	g, ok := glyphs[n]
	if !ok {
		return
	}
	scale := size / 24
	fmt.Fprintf(buf, `    <g class="icon icon-%s" transform="translate(%.1f,%.1f) scale(%.3f)">`, n, x, y, scale)
	fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`, g.path)
	buf.WriteString("</g>\n")
}
