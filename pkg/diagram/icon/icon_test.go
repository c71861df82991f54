package icon

import (
	"bytes"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   Name
		def  Name
		want Name
	}{
		{"known", Cloud, DefaultFrom, Cloud},
		{"empty falls back", "", DefaultFrom, DefaultFrom},
		{"unknown falls back", "rocket", DefaultTo, DefaultTo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.in, tt.def); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestDefaultsAreKnown(t *testing.T) {
	for _, n := range []Name{DefaultFrom, DefaultTo, Folder, File} {
		if !n.Known() {
			t.Errorf("%q should be a known icon", n)
		}
	}
}

func TestGlyph(t *testing.T) {
	if got := Glyph(Terminal); got != "❯" {
		t.Errorf("Glyph(Terminal) = %q", got)
	}
	if got := Glyph("nope"); got != "•" {
		t.Errorf("Glyph(unknown) = %q, want bullet", got)
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, Shield, 10, 20, 16)
	out := buf.String()
	if !strings.Contains(out, `translate(10.0,20.0)`) {
		t.Errorf("missing translation: %s", out)
	}
	if !strings.Contains(out, "scale(0.667)") {
		t.Errorf("missing scale: %s", out)
	}
	if !strings.Contains(out, "icon-shield") {
		t.Errorf("missing class: %s", out)
	}

	buf.Reset()
	WriteSVG(&buf, "unknown", 0, 0, 16)
	if buf.Len() != 0 {
		t.Errorf("unknown icon should draw nothing, got %q", buf.String())
	}
}

func TestInline(t *testing.T) {
	out := Inline(Folder, 16)
	if !strings.HasPrefix(out, `<svg class="icon icon-folder"`) || !strings.Contains(out, `width="16"`) {
		t.Errorf("Inline(Folder) = %s", out)
	}
	if Inline("nope", 16) != "" {
		t.Error("Inline(unknown) should be empty")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(glyphs) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(glyphs))
	}
	for _, n := range names {
		if !n.Known() {
			t.Errorf("Names() returned unknown %q", n)
		}
	}
}
