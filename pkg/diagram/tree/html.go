package tree

import (
	"bytes"
	"html/template"

	"github.com/kunhq/kundocs/pkg/diagram/icon"
)

var htmlTmpl = template.Must(template.New("tree").Parse(`
{{- define "node" -}}
<div class="relative">
{{- range .Guides}}<div class="absolute border-l h-full" style="left: {{.}}px"></div>{{end -}}
{{- if .Continues}}<div class="absolute border-l h-full" style="left: {{.OwnGuide}}px"></div>{{end -}}
<div class="flex items-center gap-2 py-1" style="padding-left: {{.Indent}}px">
{{- .Icon -}}
<div class="flex-1 min-w-0 flex items-center gap-2">
<code class="bg-transparent px-0 py-0{{if .Branch}} font-semibold{{end}}">{{.Name}}</code>
{{- if .Description}}<span class="text-sm text-muted-foreground">— {{.Description}}</span>{{end -}}
</div></div>
{{- if .Expanded}}<div class="mt-1">{{range .Children}}{{template "node" .}}{{end}}</div>{{end -}}
</div>
{{- end -}}
<div class="space-y-6{{with .ClassName}} {{.}}{{end}}">
{{- with .Title}}<h3 class="font-semibold">{{.}}</h3>{{end -}}
<div class="py-4">{{template "node" .Root}}</div></div>
`))

type htmlNode struct {
	Name        string
	Description string
	Branch      bool
	Icon        template.HTML
	Indent      int
	Guides      []int
	Continues   bool
	OwnGuide    int
	Expanded    bool
	Children    []htmlNode
}

// RenderHTML renders the tree as nested elements. Each node is a relative
// container whose absolutely positioned left borders are the guides passing
// through it; a leaf never gets a children container.
func RenderHTML(root Node, opts ...Option) []byte {
	o := newOptions(opts...)
	data := struct {
		ClassName string
		Title     string
		Root      htmlNode
	}{o.className, o.title, buildHTMLNode(root, Root())}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		// The template and its data are fixed; failure is a programming error.
		panic(err)
	}
	return buf.Bytes()
}

func buildHTMLNode(n Node, ctx Context) htmlNode {
	guides := ctx.Guides()
	px := make([]int, len(guides))
	for i, col := range guides {
		px[i] = int(GuideX(col))
	}
	h := htmlNode{
		Name:        n.Name,
		Description: n.Description,
		Branch:      n.IsBranch(),
		Icon:        template.HTML(icon.Inline(kindIcon(n.Kind), 16)),
		Indent:      ctx.Depth * UnitWidth,
		Guides:      px,
		Continues:   ctx.Continues(),
		OwnGuide:    int(GuideX(ctx.Depth)),
		Expanded:    expands(n),
	}
	if h.Expanded {
		last := len(n.Children) - 1
		h.Children = make([]htmlNode, len(n.Children))
		for i, ch := range n.Children {
			h.Children[i] = buildHTMLNode(ch, ctx.Child(i == last))
		}
	}
	return h
}
