package flow

import (
	"testing"

	"github.com/kunhq/kundocs/pkg/diagram/icon"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

func TestLayoutDanglingFallback(t *testing.T) {
	c := Chart{
		Nodes: []Node{{ID: "a", Label: "A"}},
		Edges: []Edge{{From: "a", To: "ghost"}},
	}
	d := Layout(c, DefaultOptions())
	if len(d.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(d.Rows))
	}
	to := d.Rows[0].To
	if !to.Fallback || to.Label != "ghost" || to.Icon != icon.DefaultTo {
		t.Errorf("To = %+v, want fallback box labelled ghost with %q", to, icon.DefaultTo)
	}
	from := d.Rows[0].From
	if from.Fallback || from.Label != "A" || from.Icon != icon.DefaultFrom {
		t.Errorf("From = %+v, want declared A with default icon", from)
	}
}

func TestLayoutFallbackFromSide(t *testing.T) {
	d := Layout(Chart{Edges: []Edge{{From: "nowhere", To: "else"}}}, DefaultOptions())
	r := d.Rows[0]
	if r.From.Icon != icon.DefaultFrom || r.To.Icon != icon.DefaultTo {
		t.Errorf("fallback icons = %q/%q", r.From.Icon, r.To.Icon)
	}
	if r.From.Label != "nowhere" || r.To.Label != "else" {
		t.Errorf("fallback labels = %q/%q", r.From.Label, r.To.Label)
	}
}

func TestLayoutPreservesEdgeOrder(t *testing.T) {
	c := Chart{
		Nodes: []Node{{ID: "c", Label: "C"}, {ID: "b", Label: "B"}, {ID: "a", Label: "A"}},
		Edges: []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}},
	}
	d := Layout(c, DefaultOptions())
	got := []string{d.Rows[0].From.ID + d.Rows[0].To.ID, d.Rows[1].From.ID + d.Rows[1].To.ID}
	if got[0] != "ab" || got[1] != "bc" {
		t.Errorf("row order = %v, want [ab bc]", got)
	}

	// Reversed narrative stays reversed; no topological sorting.
	c.Edges = []Edge{{From: "b", To: "c"}, {From: "a", To: "b"}}
	d = Layout(c, DefaultOptions())
	if d.Rows[0].From.ID != "b" || d.Rows[1].From.ID != "a" {
		t.Errorf("rows were reordered: %+v", d.Rows)
	}
}

func TestLayoutIcons(t *testing.T) {
	c := Chart{
		Nodes: []Node{{ID: "a", Label: "A", Icon: icon.Cloud}, {ID: "b", Label: "B", Icon: "unknown"}, {ID: "c"}},
		Edges: []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}},
	}
	d := Layout(c, DefaultOptions())
	if d.Rows[0].From.Icon != icon.Cloud {
		t.Errorf("declared icon lost: %q", d.Rows[0].From.Icon)
	}
	if d.Rows[0].To.Icon != icon.DefaultTo {
		t.Errorf("unknown icon should fall back to %q, got %q", icon.DefaultTo, d.Rows[0].To.Icon)
	}
	if d.Rows[1].To.Label != "c" {
		t.Errorf("empty label should fall back to id, got %q", d.Rows[1].To.Label)
	}
}

func TestLayoutOptions(t *testing.T) {
	d := Layout(Chart{}, Options{})
	if d.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", d.Title, DefaultTitle)
	}
	if d.Profile.Name != Compact.Name {
		t.Errorf("Profile = %q, want compact", d.Profile.Name)
	}
	if len(d.Rows) != 0 {
		t.Errorf("empty chart produced %d rows", len(d.Rows))
	}

	d = Layout(Chart{}, Options{Title: "Phase 1", Large: true})
	if d.Title != "Phase 1" || d.Profile.Name != Large.Name {
		t.Errorf("got %q/%q", d.Title, d.Profile.Name)
	}

	if !Layout(Chart{}, Options{}).ShowIcons {
		t.Error("zero Options should show icons")
	}
	if Layout(Chart{}, Options{HideIcons: true}).ShowIcons {
		t.Error("HideIcons ignored")
	}
}

func TestLayoutEmptyLabelUsesID(t *testing.T) {
	c := Chart{
		Nodes: []Node{{ID: "vm", Label: ""}, {ID: "db", Label: "Postgres"}},
		Edges: []Edge{{From: "vm", To: "db"}},
	}
	r := Layout(c, Options{}).Rows[0]
	if r.From.Label != "vm" || r.From.Fallback {
		t.Errorf("From = %+v, want declared box labelled with its id", r.From)
	}
	if r.To.Label != "Postgres" {
		t.Errorf("To.Label = %q", r.To.Label)
	}
}

func TestProfilesAreDistinct(t *testing.T) {
	if Compact.IconSize >= Large.IconSize || Compact.Padding >= Large.Padding {
		t.Error("large profile should be strictly bigger than compact")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		chart   Chart
		wantErr bool
	}{
		{"valid", Chart{Nodes: []Node{{ID: "a"}, {ID: "b"}}, Edges: []Edge{{From: "a", To: "b"}}}, false},
		{"dangling is fine", Chart{Nodes: []Node{{ID: "a"}}, Edges: []Edge{{From: "a", To: "ghost"}}}, false},
		{"empty id", Chart{Nodes: []Node{{ID: " "}}}, true},
		{"duplicate id", Chart{Nodes: []Node{{ID: "a"}, {ID: "a"}}}, true},
		{"empty endpoint", Chart{Nodes: []Node{{ID: "a"}}, Edges: []Edge{{From: "a"}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.chart)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errs.Is(err, errs.ErrCodeInvalidDiagram) {
				t.Errorf("Validate() code = %q", errs.GetCode(err))
			}
		})
	}
}

func TestDangling(t *testing.T) {
	c := Chart{
		Nodes: []Node{{ID: "a"}},
		Edges: []Edge{{From: "a", To: "ghost"}, {From: "phantom", To: "a"}},
	}
	refs := Dangling(c)
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2: %v", len(refs), refs)
	}
	if refs[0].String() != `edge 0 to "ghost"` || refs[1].String() != `edge 1 from "phantom"` {
		t.Errorf("refs = %v", refs)
	}
	if Dangling(Chart{Nodes: []Node{{ID: "a"}}, Edges: []Edge{{From: "a", To: "a"}}}) != nil {
		t.Error("no dangling refs expected")
	}
}
