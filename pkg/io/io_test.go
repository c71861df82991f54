package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kunhq/kundocs/pkg/diagram"
	"github.com/kunhq/kundocs/pkg/diagram/flow"
	"github.com/kunhq/kundocs/pkg/diagram/icon"
	"github.com/kunhq/kundocs/pkg/diagram/tree"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

const flowTOML = `
kind = "flow"
title = "Phase 1"
large = true

[titles]
ar = "المرحلة 1"

[[flow.nodes]]
id = "install"
label = "Install Tailscale"
icon = "cloud"

[[flow.nodes]]
id = "ssh"
label = "Enable SSH"

[[flow.edges]]
from = "install"
to = "ssh"
note = "tailscale up --ssh"
`

const treeYAML = `
kind: tree
title: Layout
tree:
  name: kun/
  kind: directory
  children:
    - name: README.md
      kind: file
    - name: docs/
      kind: branch
      description: Project documentation
`

const treeJSON = `{
  "kind": "tree",
  "tree": {"name": "a", "kind": "branch", "children": [{"name": "b", "kind": "leaf"}]}
}`

func TestParseDocument(t *testing.T) {
	d, err := ParseDocument([]byte(flowTOML), SyntaxTOML)
	if err != nil {
		t.Fatalf("toml: %v", err)
	}
	if d.Kind != diagram.KindFlow || !d.Large || d.Titles["ar"] != "المرحلة 1" {
		t.Errorf("unexpected document %+v", d)
	}
	if got := d.Flow.Nodes[0].Icon; got != icon.Cloud {
		t.Errorf("icon = %q", got)
	}

	d, err = ParseDocument([]byte(treeYAML), SyntaxYAML)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if d.Tree.Kind != tree.KindBranch || d.Tree.Children[0].Kind != tree.KindLeaf {
		t.Errorf("kind aliases not applied: %+v", d.Tree)
	}

	d, err = ParseDocument([]byte(treeJSON), SyntaxJSON)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if d.Size() != 2 {
		t.Errorf("Size() = %d, want 2", d.Size())
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		s    Syntax
		code errs.Code
	}{
		{"bad json", `{"kind":`, SyntaxJSON, errs.ErrCodeInvalidInput},
		{"unknown json field", `{"kind":"tree","childs":[]}`, SyntaxJSON, errs.ErrCodeInvalidInput},
		{"unknown toml field", "kind = \"grid\"\nsectons = []\n", SyntaxTOML, errs.ErrCodeInvalidInput},
		{"unknown yaml field", "kind: stepper\nstep: []\n", SyntaxYAML, errs.ErrCodeInvalidInput},
		{"no kind", `{}`, SyntaxJSON, errs.ErrCodeInvalidKind},
		{"leaf with children", `{"kind":"tree","tree":{"name":"a","kind":"leaf","children":[{"name":"b","kind":"leaf"}]}}`, SyntaxJSON, errs.ErrCodeInvalidDiagram},
		{"empty yaml", ``, SyntaxYAML, errs.ErrCodeInvalidKind},
		{"bad syntax", `{}`, Syntax("xml"), errs.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.data), tt.s)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errs.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}
}

func TestDanglingEdgesAreNotErrors(t *testing.T) {
	data := `{"kind":"flow","flow":{"nodes":[{"id":"a","label":"A"}],"edges":[{"from":"a","to":"ghost"}]}}`
	d, err := ParseDocument([]byte(data), SyntaxJSON)
	if err != nil {
		t.Fatalf("dangling edge rejected: %v", err)
	}
	if len(d.Warnings()) != 1 {
		t.Errorf("Warnings() = %v", d.Warnings())
	}
}

func TestRoundTrip(t *testing.T) {
	orig := diagram.Document{
		ID:     "phase1",
		Kind:   diagram.KindFlow,
		Title:  "Phase 1",
		Titles: map[string]string{"ar": "المرحلة 1"},
		Large:  true,
		Flow: &flow.Chart{
			Nodes: []flow.Node{{ID: "a", Label: "A", Icon: icon.Cloud}, {ID: "b", Label: "B"}},
			Edges: []flow.Edge{{From: "a", To: "b", Note: "<go>"}},
		},
	}
	for _, s := range Syntaxes {
		t.Run(string(s), func(t *testing.T) {
			data, err := MarshalDocument(orig, s)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			back, err := ParseDocument(data, s)
			if err != nil {
				t.Fatalf("parse: %v\n%s", err, data)
			}
			a, _ := orig.Render(diagram.FormatSVG, diagram.Options{})
			b, _ := back.Render(diagram.FormatSVG, diagram.Options{})
			if string(a) != string(b) {
				t.Errorf("render differs after %s round trip", s)
			}
		})
	}
}

func TestImportDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Phase 1_Flow.toml")
	if err := os.WriteFile(path, []byte(flowTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := ImportDocument(path)
	if err != nil {
		t.Fatalf("ImportDocument: %v", err)
	}
	if d.ID != "phase-1-flow" {
		t.Errorf("ID = %q, want phase-1-flow", d.ID)
	}

	_, err = ImportDocument(filepath.Join(dir, "missing.json"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
	_, err = ImportDocument(filepath.Join(dir, "notes.txt"))
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("txt file error = %v", err)
	}
}

func TestImportDocumentNeedsAnID(t *testing.T) {
	dir := t.TempDir()
	const stepper = `{"kind":"stepper","steps":[{"title":"a"}]}`

	path := filepath.Join(dir, "مرحلة.json")
	if err := os.WriteFile(path, []byte(stepper), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := ImportDocument(path)
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Fatalf("ImportDocument = id %q, err %v; want INVALID_INPUT", d.ID, err)
	}

	named := filepath.Join(dir, "مرحلة-2.json")
	if err := os.WriteFile(named, []byte(`{"id":"phase-ar","kind":"stepper","steps":[{"title":"a"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if d, err := ImportDocument(named); err != nil || d.ID != "phase-ar" {
		t.Errorf("explicit id: %q, %v", d.ID, err)
	}

	docs, bad := LoadDir(dir)
	if len(docs) != 1 || len(bad) != 1 {
		t.Errorf("LoadDir = %d docs, %d errors; want 1 and 1", len(docs), len(bad))
	}
}

func TestExportDocument(t *testing.T) {
	dir := t.TempDir()
	d := diagram.Document{ID: "t", Kind: diagram.KindTree, Tree: &tree.Node{Name: "a", Kind: tree.KindLeaf}}
	path := filepath.Join(dir, "t.yaml")
	if err := ExportDocument(d, path); err != nil {
		t.Fatal(err)
	}
	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), "kind: leaf") {
		t.Errorf("yaml output:\n%s", raw)
	}
	if _, err := ImportDocument(path); err != nil {
		t.Errorf("re-import: %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.json":     treeJSON,
		"a.toml":     flowTOML,
		"a.yaml":     treeYAML,
		"bad.json":   `{"kind":"nope"}`,
		"readme.txt": "ignored",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	docs, bad := LoadDir(dir)
	var ids []string
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	if strings.Join(ids, ",") != "a,b" {
		t.Errorf("ids = %v, want [a b]", ids)
	}
	if len(bad) != 2 {
		t.Errorf("got %d errors, want 2 (duplicate id, bad kind): %v", len(bad), bad)
	}
}

func TestIDFromPath(t *testing.T) {
	for in, want := range map[string]string{
		"phase1-flow.toml":      "phase1-flow",
		"/x/Phase 2 Setup.yaml": "phase-2-setup",
		"__a__b.json":           "a-b",
		"ok_.yml":               "ok",
		"مرحلة.json":            "",
	} {
		if got := IDFromPath(in); got != want {
			t.Errorf("IDFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSyntaxFor(t *testing.T) {
	for path, want := range map[string]Syntax{"a.json": SyntaxJSON, "a.TOML": SyntaxTOML, "a.yml": SyntaxYAML} {
		if got, err := SyntaxFor(path); err != nil || got != want {
			t.Errorf("SyntaxFor(%q) = %q, %v", path, got, err)
		}
	}
	if IsDefinition("Makefile") {
		t.Error("Makefile is not a definition")
	}
}
