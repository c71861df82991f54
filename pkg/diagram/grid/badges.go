package grid

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kunhq/kundocs/pkg/diagram/style"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

// DefaultBadgesTitle is used when a badge grid has no title.
const DefaultBadgesTitle = "Building Blocks"

// Section is a heading with badge labels underneath.
type Section struct {
	Title string   `json:"title" toml:"title" yaml:"title"`
	Items []string `json:"items" toml:"items" yaml:"items"`
}

// Badges is a grid of badge sections.
type Badges struct {
	Title    string    `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Sections []Section `json:"sections" toml:"sections" yaml:"sections"`
}

func (b Badges) title() string {
	if b.Title == "" {
		return DefaultBadgesTitle
	}
	return b.Title
}

// Validate requires every section to have a title.
func (b Badges) Validate() error {
	for i, s := range b.Sections {
		if strings.TrimSpace(s.Title) == "" {
			return errs.New(errs.ErrCodeInvalidDiagram, "section %d has no title", i)
		}
	}
	return nil
}

// RenderText prints each section heading followed by its badge rows.
func (b Badges) RenderText(opts ...Option) string {
	o := newOptions(4, opts...)
	t := style.NewTerminal(o.plain)
	badge := lipgloss.NewStyle().Background(lipgloss.Color("237")).Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(t.Accent(b.title()))
	sb.WriteString("\n")
	for _, s := range b.Sections {
		sb.WriteString("\n")
		sb.WriteString(t.Muted(s.Title))
		sb.WriteString("\n")
		for _, row := range Chunk(s.Items, o.rowSize) {
			cells := make([]string, len(row))
			for i, item := range row {
				if o.plain {
					cells[i] = "[" + item + "]"
				} else {
					cells[i] = badge.Render(item)
				}
			}
			sb.WriteString("  ")
			sb.WriteString(strings.Join(cells, " "))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

const (
	badgePad      = 16.0
	badgeGap      = 8.0
	badgeH        = 24.0
	badgeFont     = 12.0
	badgePadX     = 8.0
	badgeHeadingH = 24.0
	badgeColGap   = 24.0
	badgeTitleH   = 36.0
)

// RenderSVG draws the sections in a grid of columns, four across by default.
func (b Badges) RenderSVG(opts ...Option) []byte {
	o := newOptions(4, opts...)

	colW := 0.0
	for _, s := range b.Sections {
		colW = max(colW, style.TextWidth(s.Title, badgeFont))
		for _, row := range Chunk(s.Items, o.rowSize) {
			colW = max(colW, badgeRowWidth(row))
		}
	}
	cols := min(o.columns, max(1, len(b.Sections)))

	// Height of each grid row is that of its tallest section.
	var rowHeights []float64
	for _, group := range Chunk(b.Sections, cols) {
		h := 0.0
		for _, s := range group {
			h = max(h, sectionHeight(s, o.rowSize))
		}
		rowHeights = append(rowHeights, h)
	}

	width := max(2*badgePad+float64(cols)*colW+float64(cols-1)*badgeColGap, 2*badgePad+style.TextWidth(b.title(), 16))
	height := badgePad + badgeTitleH + badgePad
	for _, h := range rowHeights {
		height += h + badgeColGap
	}

	var buf bytes.Buffer
	style.OpenSVG(&buf, width, height, "badges")
	fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="16" font-weight="600">%s</text>`+"\n",
		badgePad, badgePad+18, style.EscapeXML(b.title()))

	y := badgePad + badgeTitleH
	for gi, group := range Chunk(b.Sections, cols) {
		for ci, s := range group {
			x := badgePad + float64(ci)*(colW+badgeColGap)
			renderSVGSection(&buf, s, x, y, o.rowSize)
		}
		y += rowHeights[gi] + badgeColGap
	}
	style.CloseSVG(&buf)
	return buf.Bytes()
}

func renderSVGSection(buf *bytes.Buffer, s Section, x, y float64, rowSize int) {
	buf.WriteString("  <g class=\"section\">\n")
	fmt.Fprintf(buf, `    <text class="muted" x="%.1f" y="%.1f" font-size="%.0f">%s</text>`+"\n",
		x, y+badgeFont+2, badgeFont, style.EscapeXML(s.Title))
	ry := y + badgeHeadingH
	for _, row := range Chunk(s.Items, rowSize) {
		bx := x
		for _, item := range row {
			w := badgeWidth(item)
			fmt.Fprintf(buf, `    <rect class="badge" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s"/>`+"\n",
				bx, ry, w, badgeH, style.Subtle)
			fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="%.0f">%s</text>`+"\n",
				bx+badgePadX, ry+badgeH/2+badgeFont/3, badgeFont, style.EscapeXML(item))
			bx += w + badgeGap
		}
		ry += badgeH + badgeGap
	}
	buf.WriteString("  </g>\n")
}

func badgeWidth(item string) float64 {
	return 2*badgePadX + style.TextWidth(item, badgeFont)
}

func badgeRowWidth(row []string) float64 {
	w := 0.0
	for i, item := range row {
		if i > 0 {
			w += badgeGap
		}
		w += badgeWidth(item)
	}
	return w
}

func sectionHeight(s Section, rowSize int) float64 {
	rows := len(Chunk(s.Items, rowSize))
	return badgeHeadingH + float64(rows)*(badgeH+badgeGap)
}

var badgesTmpl = template.Must(template.New("badges").Parse(`<div class="">
<div class="grid gap-4 sm:grid-cols-2 lg:grid-cols-3 xl:grid-cols-4">
{{- range .}}
<div class="space-y-2">
<div class="text-xs text-muted-foreground">{{.Title}}</div>
{{- range .Rows}}
<div class="flex gap-2">{{range .}}<span class="badge badge-secondary w-auto text-xs font-normal px-2 py-1">{{.}}</span>{{end}}</div>
{{- end}}
</div>
{{- end}}
</div>
</div>
`))

// RenderHTML renders the sections as a responsive grid of badge rows.
func (b Badges) RenderHTML(opts ...Option) []byte {
	o := newOptions(4, opts...)
	type section struct {
		Title string
		Rows  [][]string
	}
	data := make([]section, len(b.Sections))
	for i, s := range b.Sections {
		data[i] = section{Title: s.Title, Rows: Chunk(s.Items, o.rowSize)}
	}
	var buf bytes.Buffer
	if err := badgesTmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
