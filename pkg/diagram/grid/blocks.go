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

// DefaultStackTitle is used when a stack has no title.
const DefaultStackTitle = "System Blocks"

// Block is a titled card with a bullet list.
type Block struct {
	Title string   `json:"title" toml:"title" yaml:"title"`
	Items []string `json:"items" toml:"items" yaml:"items"`
}

// Stack is a row of blocks, three across by default.
type Stack struct {
	Title  string  `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Blocks []Block `json:"blocks" toml:"blocks" yaml:"blocks"`
}

func (s Stack) title() string {
	if s.Title == "" {
		return DefaultStackTitle
	}
	return s.Title
}

// Validate requires every block to have a title.
func (s Stack) Validate() error {
	for i, b := range s.Blocks {
		if strings.TrimSpace(b.Title) == "" {
			return errs.New(errs.ErrCodeInvalidDiagram, "block %d has no title", i)
		}
	}
	return nil
}

// RenderText draws the blocks as bordered cards joined side by side, wrapping
// after the configured number of columns.
func (s Stack) RenderText(opts ...Option) string {
	o := newOptions(3, opts...)
	t := style.NewTerminal(o.plain)

	var sb strings.Builder
	sb.WriteString(t.Accent(s.title()))
	sb.WriteString("\n\n")
	for _, group := range Chunk(s.Blocks, o.columns) {
		cards := make([]string, 0, 2*len(group))
		for i, b := range group {
			if i > 0 {
				cards = append(cards, " ")
			}
			lines := []string{t.Strong(b.Title)}
			for _, it := range b.Items {
				lines = append(lines, t.Muted("• "+it))
			}
			cards = append(cards, t.Box(strings.Join(lines, "\n")))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		sb.WriteString("\n")
	}
	return sb.String()
}

const (
	blockPad     = 16.0
	blockGap     = 16.0
	blockInner   = 16.0
	blockTitleH  = 24.0
	blockLineH   = 20.0
	blockFont    = 13.0
	blockHeading = 36.0
)

// RenderSVG draws the blocks as equal-width cards.
func (s Stack) RenderSVG(opts ...Option) []byte {
	o := newOptions(3, opts...)
	cols := min(o.columns, max(1, len(s.Blocks)))

	cardW := 0.0
	maxItems := 0
	for _, b := range s.Blocks {
		cardW = max(cardW, style.TextWidth(b.Title, blockFont))
		for _, it := range b.Items {
			cardW = max(cardW, style.TextWidth("• "+it, blockFont))
		}
		maxItems = max(maxItems, len(b.Items))
	}
	cardW += 2 * blockInner
	cardH := 2*blockInner + blockTitleH + float64(maxItems)*blockLineH
	groups := Chunk(s.Blocks, cols)

	width := max(2*blockPad+float64(cols)*cardW+float64(cols-1)*blockGap, 2*blockPad+style.TextWidth(s.title(), 16))
	height := blockPad + blockHeading + float64(len(groups))*(cardH+blockGap) - blockGap + blockPad
	if len(groups) == 0 {
		height = blockPad + blockHeading + blockPad
	}

	var buf bytes.Buffer
	style.OpenSVG(&buf, width, height, "blocks")
	fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="16" font-weight="600">%s</text>`+"\n",
		blockPad, blockPad+18, style.EscapeXML(s.title()))
	for gi, group := range groups {
		y := blockPad + blockHeading + float64(gi)*(cardH+blockGap)
		for ci, b := range group {
			x := blockPad + float64(ci)*(cardW+blockGap)
			buf.WriteString("  <g class=\"block\">\n")
			fmt.Fprintf(&buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s" stroke="%s"/>`+"\n",
				x, y, cardW, cardH, style.Surface, style.Border)
			fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" font-size="%.0f" font-weight="500">%s</text>`+"\n",
				x+blockInner, y+blockInner+blockFont, blockFont, style.EscapeXML(b.Title))
			for i, it := range b.Items {
				fmt.Fprintf(&buf, `    <text class="muted" x="%.1f" y="%.1f" font-size="%.0f">• %s</text>`+"\n",
					x+blockInner, y+blockInner+blockTitleH+float64(i+1)*blockLineH-4, blockFont, style.EscapeXML(it))
			}
			buf.WriteString("  </g>\n")
		}
	}
	style.CloseSVG(&buf)
	return buf.Bytes()
}

var stackTmpl = template.Must(template.New("stack").Parse(`<div class="pb-10">
<div class="grid gap-4 md:grid-cols-3">
{{- range .}}
<div class="rounded-md border p-4">
<div class="text-sm font-medium mb-2">{{.Title}}</div>
<ul class="list-disc pl-4 text-sm text-muted-foreground space-y-1">{{range .Items}}<li>{{.}}</li>{{end}}</ul>
</div>
{{- end}}
</div>
</div>
`))

// RenderHTML renders the blocks as a three-column card grid.
func (s Stack) RenderHTML(...Option) []byte {
	var buf bytes.Buffer
	if err := stackTmpl.Execute(&buf, s.Blocks); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
