// Package stepper renders numbered step lists joined by a vertical connector.
package stepper

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/kunhq/kundocs/pkg/diagram/style"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

// DefaultTitle is used when a flow has no title.
const DefaultTitle = "Setup Flow"

// Step is one numbered entry.
type Step struct {
	Title  string `json:"title" toml:"title" yaml:"title"`
	Detail string `json:"detail,omitempty" toml:"detail,omitempty" yaml:"detail,omitempty"`
}

// Flow is an ordered list of steps.
type Flow struct {
	Title string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Steps []Step `json:"steps" toml:"steps" yaml:"steps"`
}

func (f Flow) title() string {
	if f.Title == "" {
		return DefaultTitle
	}
	return f.Title
}

// Validate requires every step to have a title.
func (f Flow) Validate() error {
	for i, s := range f.Steps {
		if strings.TrimSpace(s.Title) == "" {
			return errs.New(errs.ErrCodeInvalidDiagram, "step %d has no title", i+1)
		}
	}
	return nil
}

// Options controls presentation.
type Options struct {
	// Compact selects the smaller type scale. It is the default.
	Compact bool
	Plain   bool
}

// DefaultOptions returns compact, styled output.
func DefaultOptions() Options {
	return Options{Compact: true}
}

// Item is a laid-out step.
type Item struct {
	Number    int
	Title     string
	Detail    string
	Connector bool
}

// Layout numbers the steps from 1 and marks every step but the last as
// having a connector below it.
func Layout(f Flow) []Item {
	items := make([]Item, len(f.Steps))
	for i, s := range f.Steps {
		items[i] = Item{
			Number:    i + 1,
			Title:     s.Title,
			Detail:    s.Detail,
			Connector: i < len(f.Steps)-1,
		}
	}
	return items
}

// RenderText prints the steps as a numbered list with a vertical rule in
// the gutter between consecutive steps. Non-compact output gives every
// connector its own line.
func RenderText(f Flow, o Options) string {
	t := style.NewTerminal(o.Plain)
	items := Layout(f)
	width := len(strconv.Itoa(len(items)))

	var b strings.Builder
	b.WriteString(t.Accent(f.title()))
	b.WriteString("\n\n")
	for _, it := range items {
		num := fmt.Sprintf("(%*d)", width, it.Number)
		fmt.Fprintf(&b, "%s %s\n", t.Accent(num), t.Strong(it.Title))

		gutter := strings.Repeat(" ", len(num)+1)
		if it.Connector {
			half := len(num) / 2
			gutter = strings.Repeat(" ", half) + "│" + strings.Repeat(" ", len(num)-half)
		}
		if it.Detail != "" {
			b.WriteString(t.Muted(gutter + it.Detail))
			b.WriteByte('\n')
		}
		if it.Connector && (!o.Compact || it.Detail == "") {
			b.WriteString(t.Muted(strings.TrimRight(gutter, " ")))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

type scale struct {
	circle, title, detail, stepH float64
}

func scaleFor(compact bool) scale {
	if compact {
		return scale{circle: 24, title: 14, detail: 12, stepH: 56}
	}
	return scale{circle: 32, title: 16, detail: 14, stepH: 68}
}

const (
	svgPad    = 24.0
	svgTitleH = 40.0
	svgGap    = 12.0
)

// RenderSVG draws the steps as numbered circles joined by a vertical line.
func RenderSVG(f Flow, o Options) []byte {
	sc := scaleFor(o.Compact)
	items := Layout(f)

	width := svgPad + style.TextWidth(f.title(), 18)
	for _, it := range items {
		w := max(style.TextWidth(it.Title, sc.title), style.TextWidth(it.Detail, sc.detail))
		width = max(width, svgPad+sc.circle+svgGap+w)
	}
	width += svgPad
	height := svgPad + svgTitleH + float64(len(items))*sc.stepH + svgPad

	var buf bytes.Buffer
	style.OpenSVG(&buf, width, height, "stepper")
	fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="18" font-weight="500">%s</text>`+"\n",
		svgPad, svgPad+18, style.EscapeXML(f.title()))

	cx := svgPad + sc.circle/2
	for i, it := range items {
		y := svgPad + svgTitleH + float64(i)*sc.stepH
		cy := y + sc.circle/2
		fmt.Fprintf(&buf, `  <g class="step" data-step="%d">`+"\n", it.Number)
		if it.Connector {
			fmt.Fprintf(&buf, `    <line class="guide" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
				cx, y+sc.circle+4, cx, y+sc.stepH-4)
		}
		fmt.Fprintf(&buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s"/>`+"\n",
			cx, cy, sc.circle/2, style.Surface, style.Border)
		fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" font-size="%.0f" font-weight="500" text-anchor="middle">%d</text>`+"\n",
			cx, cy+sc.title/3, sc.title-2, it.Number)
		tx := svgPad + sc.circle + svgGap
		fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" font-size="%.0f" font-weight="500">%s</text>`+"\n",
			tx, cy+sc.title/3, sc.title, style.EscapeXML(it.Title))
		if it.Detail != "" {
			fmt.Fprintf(&buf, `    <text class="muted" x="%.1f" y="%.1f" font-size="%.0f">%s</text>`+"\n",
				tx, cy+sc.title/3+sc.detail+6, sc.detail, style.EscapeXML(it.Detail))
		}
		buf.WriteString("  </g>\n")
	}
	style.CloseSVG(&buf)
	return buf.Bytes()
}

var htmlTmpl = template.Must(template.New("stepper").Parse(`<div class="rounded-md border p-6">
<div class="mb-4 text-lg font-medium">{{.Title}}</div>
<ol class="relative">
{{- range .Items}}
<li class="flex items-start">
<div class="flex flex-col items-center mr-3">
<div class="flex items-center justify-center rounded-full border {{$.Circle}} font-medium">{{.Number}}</div>
{{- if .Connector}}<div class="w-px grow bg-border my-1"></div>{{end}}
</div>
<div class="pb-4">
<div class="font-medium {{$.Size}}">{{.Title}}</div>
{{- with .Detail}}<div class="text-muted-foreground {{$.DetailSize}}">{{.}}</div>{{end}}
</div>
</li>
{{- end}}
</ol>
</div>
`))

// RenderHTML renders the steps as an ordered list.
func RenderHTML(f Flow, o Options) []byte {
	data := struct {
		Title      string
		Items      []Item
		Size       string
		Circle     string
		DetailSize string
	}{f.title(), Layout(f), "text-base", "h-8 w-8", "text-sm"}
	if o.Compact {
		data.Size, data.Circle, data.DetailSize = "text-sm", "h-6 w-6", "text-xs"
	}
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
