package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/kunhq/kundocs/pkg/errors"
)

// run executes the root command in an empty working directory with the
// artifact cache disabled and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStatus(t, args...)
	return out, err
}

// runWithStatus is run that also returns the status lines and logs written
// to stderr.
func runWithStatus(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("KUNDOCS_CACHE_BACKEND", "none")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestRenderToStdout(t *testing.T) {
	out, err := run(t, "render", "directory-structure", "-f", "txt", "--plain")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "├── scripts/ — Setup and maintenance scripts\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("--plain output contains escape codes")
	}
}

func TestRenderDOT(t *testing.T) {
	out, err := run(t, "render", "phase1-flow", "-f", "dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "digraph") {
		t.Errorf("unexpected dot output:\n%s", out)
	}
}

func TestRenderToFiles(t *testing.T) {
	out, status, err := runWithStatus(t, "render", "stacked-blocks", "-f", "svg,json", "-o", "build/blocks.svg")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("file output also wrote to stdout: %q", out)
	}
	if !strings.Contains(status, "Rendered") || !strings.Contains(status, "build/blocks.json") {
		t.Errorf("missing status lines:\n%s", status)
	}
	for _, p := range []string{"build/blocks.svg", "build/blocks.json"} {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestRenderDefinitionFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deploy.yaml")
	def := "kind: stepper\ntitle: Deploy\nsteps:\n  - title: Build\n  - title: Ship\n"
	if err := os.WriteFile(path, []byte(def), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "render", path, "-f", "txt", "--plain")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Build") || !strings.Contains(out, "Ship") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRenderNodeLink(t *testing.T) {
	rows, err := run(t, "render", "phase1-flow", "-f", "svg")
	if err != nil {
		t.Fatal(err)
	}
	graph, err := run(t, "render", "phase1-flow", "-f", "svg", "--layout", "nodelink")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(graph, "<svg") || graph == rows {
		t.Errorf("nodelink layout not applied:\n%s", graph)
	}
	if _, err := run(t, "render", "phase1-flow", "--layout", "radial"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("bad layout: %v", err)
	}
}

func TestRenderErrors(t *testing.T) {
	_, err := run(t, "render", "no-such-diagram")
	if !errs.Is(err, errs.ErrCodeDiagramNotFound) {
		t.Errorf("unknown id: %v", err)
	}
	_, err = run(t, "render", "phase1-flow", "-f", "gif")
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("bad format: %v", err)
	}
	_, err = run(t, "render", "structure", "-f", "dot")
	if !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("dot for a tree: %v", err)
	}
	_, err = run(t, "render", "missing.toml")
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file: %v", err)
	}
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "--plain", "--lang", "ar")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "phase1-flow\tflow\tالمرحلة 1: الإعداد الفردي\n") {
		t.Errorf("unexpected list:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 11 {
		t.Errorf("got %d rows, want 11", n)
	}
}

func TestListTable(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"ID", "building-blocks", "11 diagrams"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "phase1-setup")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Install Tailscale") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSource(t *testing.T) {
	out, err := run(t, "source", "phase1-flow", "--format", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"kind: flow", "id: phase1-flow"} {
		if !strings.Contains(out, want) {
			t.Errorf("source missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "source", "phase1-flow", "--format", "xml"); !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("bad syntax: %v", err)
	}
}

func TestHighlight(t *testing.T) {
	var buf bytes.Buffer
	if err := highlight(&buf, "kind = \"flow\"\n", "toml"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("highlighted output has no escape codes")
	}
	if !strings.Contains(buf.String(), "flow") {
		t.Error("highlighted output lost the source text")
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		output  string
		formats []string
		want    map[string]string
	}{
		{"", []string{"png"}, map[string]string{"png": "phase1-flow.png"}},
		{"out.svg", []string{"svg"}, map[string]string{"svg": "out.svg"}},
		{"", []string{"svg", "pdf"}, map[string]string{"svg": "phase1-flow.svg", "pdf": "phase1-flow.pdf"}},
		{"build/flow.svg", []string{"svg", "txt"}, map[string]string{"svg": "build/flow.svg", "txt": "build/flow.txt"}},
		{"build/flow", []string{"svg", "html"}, map[string]string{"svg": "build/flow.svg", "html": "build/flow.html"}},
	}
	for _, tt := range tests {
		got := outputPaths(tt.output, "phase1-flow", tt.formats)
		for f, want := range tt.want {
			if got[f] != want {
				t.Errorf("outputPaths(%q, %v)[%s] = %q, want %q", tt.output, tt.formats, f, got[f], want)
			}
		}
	}
}

func TestCompleteFormats(t *testing.T) {
	got, _ := completeFormats(nil, nil, "svg,")
	for _, f := range got {
		if f == "svg,svg" {
			t.Error("already chosen format offered again")
		}
		if !strings.HasPrefix(f, "svg,") {
			t.Errorf("completion %q lost the prefix", f)
		}
	}
}
