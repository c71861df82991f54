package tree

import (
	"strings"

	"github.com/kunhq/kundocs/pkg/diagram/style"
)

const (
	connMid  = "├── "
	connLast = "└── "
	pipe     = "│   "
	blank    = "    "
)

// RenderText draws the tree with box-drawing connectors, one row per line.
// Branch names are bold and descriptions muted unless [WithPlain] is given.
func RenderText(root Node, opts ...Option) string {
	o := newOptions(opts...)
	t := style.NewTerminal(o.plain)

	var b strings.Builder
	if o.title != "" {
		b.WriteString(t.Accent(o.title))
		b.WriteString("\n\n")
	}
	for _, r := range Layout(root) {
		b.WriteString(Prefix(r))
		name := r.Name
		if r.Kind == KindBranch {
			name = t.Strong(name)
		}
		b.WriteString(name)
		if r.Description != "" {
			b.WriteString(" ")
			b.WriteString(t.Muted("— " + r.Description))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Prefix returns the connector prefix for a row: one pipe or blank cell per
// ancestor column, then the row's own tee or elbow. The root has none.
func Prefix(r Row) string {
	if r.Depth == 0 {
		return ""
	}
	var b strings.Builder
	for col := 1; col < r.Depth; col++ {
		if r.HasGuide(col) {
			b.WriteString(pipe)
		} else {
			b.WriteString(blank)
		}
	}
	if r.IsLast {
		b.WriteString(connLast)
	} else {
		b.WriteString(connMid)
	}
	return b.String()
}
