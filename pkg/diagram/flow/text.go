package flow

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kunhq/kundocs/pkg/diagram/icon"
	"github.com/kunhq/kundocs/pkg/diagram/style"
)

// RenderText draws each edge as a line of two bordered boxes joined by an
// arrow, with the note between them.
func RenderText(c Chart, o Options) string {
	d := Layout(c, o)
	t := style.NewTerminal(o.Plain)
	p := d.Profile

	var b strings.Builder
	b.WriteString(t.Accent(d.Title))
	b.WriteString("\n\n")
	for i, r := range d.Rows {
		if i > 0 {
			b.WriteString(strings.Repeat("\n", p.TextRowGap))
		}
		mid := " " + t.Muted(icon.Glyph(icon.ArrowRight)) + " "
		if r.Note != "" {
			mid += t.Muted(r.Note) + " "
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			textBox(t, r.From, d.ShowIcons, p),
			mid,
			textBox(t, r.To, d.ShowIcons, p),
		))
		b.WriteByte('\n')
	}
	return b.String()
}

func textBox(t style.Terminal, bx Box, showIcons bool, p Profile) string {
	label := bx.Label
	if showIcons {
		label = icon.Glyph(bx.Icon) + " " + label
	}
	return t.BoxPadded(label, p.TextPadV, p.TextPadH)
}
