// Package diagram defines the document format shared by every diagram kind
// and dispatches rendering to the kind's package.
//
// A [Document] is a tagged union: Kind selects which payload field is
// meaningful. Documents are loaded from JSON, TOML or YAML by pkg/io or
// built in code by pkg/catalog; either way [Document.Validate] is the single
// gate between user input and the renderers.
//
// Subpackages:
//   - [tree]: structure diagrams with connector lines
//   - [flow]: ordered from → to process rows
//   - [grid]: chunked badge sections and stacked blocks
//   - [stepper]: numbered step lists
//
// [tree]: github.com/kunhq/kundocs/pkg/diagram/tree
// [flow]: github.com/kunhq/kundocs/pkg/diagram/flow
// [grid]: github.com/kunhq/kundocs/pkg/diagram/grid
// [stepper]: github.com/kunhq/kundocs/pkg/diagram/stepper
package diagram

import (
	"slices"

	"github.com/kunhq/kundocs/pkg/diagram/flow"
	"github.com/kunhq/kundocs/pkg/diagram/grid"
	"github.com/kunhq/kundocs/pkg/diagram/stepper"
	"github.com/kunhq/kundocs/pkg/diagram/tree"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

// Kind names a diagram type.
type Kind string

const (
	KindTree    Kind = "tree"
	KindFlow    Kind = "flow"
	KindGrid    Kind = "grid"
	KindBlocks  Kind = "blocks"
	KindStepper Kind = "stepper"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{KindTree, KindFlow, KindGrid, KindBlocks, KindStepper}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// Document is a self-describing diagram definition.
type Document struct {
	ID    string `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Kind  Kind   `json:"kind" toml:"kind" yaml:"kind"`
	Title string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	// Titles holds translations of Title keyed by BCP 47 language tag.
	Titles map[string]string `json:"titles,omitempty" toml:"titles,omitempty" yaml:"titles,omitempty"`

	Large     bool  `json:"large,omitempty" toml:"large,omitempty" yaml:"large,omitempty"`
	ShowIcons *bool `json:"show_icons,omitempty" toml:"show_icons,omitempty" yaml:"show_icons,omitempty"`
	Compact   *bool `json:"compact,omitempty" toml:"compact,omitempty" yaml:"compact,omitempty"`

	Tree     *tree.Node     `json:"tree,omitempty" toml:"tree,omitempty" yaml:"tree,omitempty"`
	Flow     *flow.Chart    `json:"flow,omitempty" toml:"flow,omitempty" yaml:"flow,omitempty"`
	Sections []grid.Section `json:"sections,omitempty" toml:"sections,omitempty" yaml:"sections,omitempty"`
	Blocks   []grid.Block   `json:"blocks,omitempty" toml:"blocks,omitempty" yaml:"blocks,omitempty"`
	Steps    []stepper.Step `json:"steps,omitempty" toml:"steps,omitempty" yaml:"steps,omitempty"`
}

// Validate checks the kind, the presence of the matching payload and the
// payload's own invariants.
func (d Document) Validate() error {
	if d.ID != "" {
		if err := errs.ValidateDiagramID(d.ID); err != nil {
			return err
		}
	}
	switch d.Kind {
	case KindTree:
		if d.Tree == nil {
			return errs.New(errs.ErrCodeInvalidDiagram, "tree document has no tree")
		}
		return tree.Validate(*d.Tree)
	case KindFlow:
		if d.Flow == nil {
			return errs.New(errs.ErrCodeInvalidDiagram, "flow document has no flow")
		}
		return flow.Validate(*d.Flow)
	case KindGrid:
		return grid.Badges{Sections: d.Sections}.Validate()
	case KindBlocks:
		return grid.Stack{Blocks: d.Blocks}.Validate()
	case KindStepper:
		return stepper.Flow{Steps: d.Steps}.Validate()
	case "":
		return errs.New(errs.ErrCodeInvalidKind, "document has no kind")
	default:
		return errs.New(errs.ErrCodeInvalidKind, "unknown diagram kind %q", d.Kind)
	}
}

// Warnings reports non-fatal problems, such as flow edges that reference
// undeclared nodes and will render as fallback boxes.
func (d Document) Warnings() []string {
	if d.Kind != KindFlow || d.Flow == nil {
		return nil
	}
	refs := flow.Dangling(*d.Flow)
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = "dangling reference: " + r.String()
	}
	return out
}

// Size returns the number of primary elements: tree nodes, flow edges,
// badges, blocks or steps.
func (d Document) Size() int {
	switch d.Kind {
	case KindTree:
		if d.Tree != nil {
			return d.Tree.Count()
		}
	case KindFlow:
		if d.Flow != nil {
			return len(d.Flow.Edges)
		}
	case KindGrid:
		n := 0
		for _, s := range d.Sections {
			n += len(s.Items)
		}
		return n
	case KindBlocks:
		return len(d.Blocks)
	case KindStepper:
		return len(d.Steps)
	}
	return 0
}

func (d Document) showIcons() bool {
	return d.ShowIcons == nil || *d.ShowIcons
}

func (d Document) compact() bool {
	return d.Compact == nil || *d.Compact
}

// Bool returns a pointer to b, for the optional document flags.
func Bool(b bool) *bool { return &b }
