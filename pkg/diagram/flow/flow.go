// Package flow renders process diagrams as an ordered list of
// "from → to" rows.
//
// A [Chart] is a node list plus an edge list. Edges are the narrative: they
// are drawn top to bottom in slice order and never re-sorted by any graph
// property. Edges may reference ids that no node declares; such references
// render as fallback boxes (the raw id as label, the side's default icon)
// instead of failing, so a typo in a literal chart never breaks a page.
package flow

import (
	"fmt"
	"strings"

	"github.com/kunhq/kundocs/pkg/diagram/icon"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

// DefaultTitle is used when [Options.Title] is empty.
const DefaultTitle = "Flow"

// Node is a box in the chart.
type Node struct {
	ID    string    `json:"id" toml:"id" yaml:"id"`
	Label string    `json:"label" toml:"label" yaml:"label"`
	Icon  icon.Name `json:"icon,omitempty" toml:"icon,omitempty" yaml:"icon,omitempty"`
}

// Edge is a directed arrow between two node ids with an optional note.
type Edge struct {
	From string `json:"from" toml:"from" yaml:"from"`
	To   string `json:"to" toml:"to" yaml:"to"`
	Note string `json:"note,omitempty" toml:"note,omitempty" yaml:"note,omitempty"`
}

// Chart is the input of every flow sink.
type Chart struct {
	Nodes []Node `json:"nodes" toml:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" toml:"edges" yaml:"edges"`
}

// Options controls presentation. The zero value is the standard look:
// compact, icons shown, titled [DefaultTitle].
type Options struct {
	Title     string
	Large     bool
	HideIcons bool
	// Plain disables terminal styling in [RenderText].
	Plain bool
}

// DefaultOptions returns the zero Options with the default title filled in.
func DefaultOptions() Options {
	return Options{Title: DefaultTitle}
}

func (o Options) title() string {
	if o.Title == "" {
		return DefaultTitle
	}
	return o.Title
}

// Box is a resolved edge endpoint. Label is the node's label, or its id when
// the node is undeclared or declares an empty label.
type Box struct {
	ID    string
	Label string
	Icon  icon.Name
	// Fallback is set when the id matched no declared node.
	Fallback bool
}

// Row is one rendered edge.
type Row struct {
	From Box
	To   Box
	Note string
}

// Diagram is a chart resolved against its options, ready for a sink.
type Diagram struct {
	Title     string
	Profile   Profile
	ShowIcons bool
	Rows      []Row
}

// Layout resolves every edge of c into a row, in edge order. The id index is
// built once per call and discarded afterwards.
func Layout(c Chart, o Options) Diagram {
	index := make(map[string]Node, len(c.Nodes))
	for _, n := range c.Nodes {
		index[n.ID] = n
	}

	rows := make([]Row, len(c.Edges))
	for i, e := range c.Edges {
		rows[i] = Row{
			From: resolve(index, e.From, icon.DefaultFrom),
			To:   resolve(index, e.To, icon.DefaultTo),
			Note: e.Note,
		}
	}
	return Diagram{
		Title:     o.title(),
		Profile:   ProfileFor(o.Large),
		ShowIcons: !o.HideIcons,
		Rows:      rows,
	}
}

func resolve(index map[string]Node, id string, def icon.Name) Box {
	n, ok := index[id]
	if !ok {
		return Box{ID: id, Label: id, Icon: def, Fallback: true}
	}
	label := n.Label
	if label == "" {
		label = id
	}
	return Box{ID: id, Label: label, Icon: icon.Resolve(n.Icon, def)}
}

// Validate rejects charts with empty or duplicate node ids and edges with an
// empty endpoint. Dangling references are not errors; see [Dangling].
func Validate(c Chart) error {
	seen := make(map[string]int, len(c.Nodes))
	for i, n := range c.Nodes {
		if strings.TrimSpace(n.ID) == "" {
			return errs.New(errs.ErrCodeInvalidDiagram, "node %d has an empty id", i)
		}
		if j, dup := seen[n.ID]; dup {
			return errs.New(errs.ErrCodeInvalidDiagram, "nodes %d and %d share id %q", j, i, n.ID)
		}
		seen[n.ID] = i
	}
	for i, e := range c.Edges {
		if e.From == "" || e.To == "" {
			return errs.New(errs.ErrCodeInvalidDiagram, "edge %d has an empty endpoint", i)
		}
	}
	return nil
}

// Reference is an edge endpoint that names an undeclared node.
type Reference struct {
	Edge int
	Side string
	ID   string
}

func (r Reference) String() string {
	return fmt.Sprintf("edge %d %s %q", r.Edge, r.Side, r.ID)
}

// Dangling lists edge endpoints that reference undeclared nodes, in edge
// order. They still render, as fallback boxes.
func Dangling(c Chart) []Reference {
	declared := make(map[string]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		declared[n.ID] = true
	}
	var refs []Reference
	for i, e := range c.Edges {
		if !declared[e.From] {
			refs = append(refs, Reference{Edge: i, Side: "from", ID: e.From})
		}
		if !declared[e.To] {
			refs = append(refs, Reference{Edge: i, Side: "to", ID: e.To})
		}
	}
	return refs
}
