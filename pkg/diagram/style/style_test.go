package style

import (
	"bytes"
	"strings"
	"testing"
)

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`<a & "b">`); got != "&lt;a &amp; &#34;b&#34;&gt;" {
		t.Errorf("EscapeXML = %q", got)
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("abcd", 10); got != 24 {
		t.Errorf("TextWidth = %v, want 24", got)
	}
	// Runes, not bytes.
	if got := TextWidth("مرحلة", 10); got != 30 {
		t.Errorf("TextWidth(arabic) = %v, want 30", got)
	}
}

func TestOpenCloseSVG(t *testing.T) {
	var buf bytes.Buffer
	OpenSVG(&buf, 120, 40, "tree")
	CloseSVG(&buf)
	out := buf.String()
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" class="tree" viewBox="0 0 120.0 40.0" width="120" height="40">`) {
		t.Errorf("unexpected header: %s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("missing closing tag: %s", out)
	}
}

func TestTerminalPlain(t *testing.T) {
	term := NewTerminal(true)
	if !term.Plain() {
		t.Fatal("Plain() = false")
	}
	for _, s := range []string{term.Strong("x"), term.Muted("x"), term.Accent("x")} {
		if s != "x" {
			t.Errorf("plain terminal styled %q", s)
		}
	}
	box := term.Box("hi")
	if !strings.Contains(box, "hi") || !strings.Contains(box, "╭") {
		t.Errorf("Box = %q", box)
	}
}
