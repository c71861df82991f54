package flow

import (
	"bytes"
	"html/template"

	"github.com/kunhq/kundocs/pkg/diagram/icon"
)

var htmlTmpl = template.Must(template.New("flow").Funcs(template.FuncMap{"box": newHTMLBox}).Parse(`
{{- define "box" -}}
<div class="flex items-center {{if $.ShowIcons}}gap-2{{else}}gap-1{{end}} rounded-md border {{$.P.HTMLBox}}{{if .Fallback}} border-dashed{{end}}">
{{- if $.ShowIcons}}{{.Icon}}{{end -}}
<span>{{.Label}}</span></div>
{{- end -}}
<div class="rounded-md border {{.P.HTMLPadding}}">
<div class="mb-4 {{.P.HTMLTitle}}">{{.Title}}</div>
<div class="flex flex-col {{.P.HTMLGap}}">
{{- range .Rows}}
<div class="flex items-center gap-3">
{{- template "box" (box $ .From)}}
{{- $.Arrow}}
{{- with .Note}}<span class="{{$.P.HTMLNote}} text-muted-foreground">{{.}}</span>{{end}}
{{- template "box" (box $ .To)}}
</div>
{{- end}}
</div>
</div>
`))

type htmlData struct {
	Title     string
	P         Profile
	ShowIcons bool
	Arrow     template.HTML
	Rows      []Row
}

type htmlBox struct {
	htmlData
	Label    string
	Icon     template.HTML
	Fallback bool
}

func newHTMLBox(d htmlData, b Box) htmlBox {
	return htmlBox{
		htmlData: d,
		Label:    b.Label,
		Icon:     template.HTML(icon.Inline(b.Icon, int(d.P.IconSize))),
		Fallback: b.Fallback,
	}
}

// RenderHTML renders the chart as a bordered card with one flex row per edge.
func RenderHTML(c Chart, o Options) []byte {
	d := Layout(c, o)
	data := htmlData{
		Title:     d.Title,
		P:         d.Profile,
		ShowIcons: d.ShowIcons,
		Arrow:     template.HTML(`<span class="text-muted-foreground">` + icon.Inline(icon.ArrowRight, int(d.Profile.IconSize)) + `</span>`),
		Rows:      d.Rows,
	}
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
