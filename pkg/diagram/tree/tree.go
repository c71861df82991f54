// Package tree renders hierarchical structure diagrams with directory-style
// connector lines.
//
// A diagram is a single root [Node]. [Layout] walks it depth first and returns
// one [Row] per visible node, each carrying everything a sink needs to draw
// that row on its own: indentation depth, the ancestor guide columns passing
// through it and whether its own connector continues below it. The text, SVG
// and HTML sinks are thin writers over those rows.
//
// Rendering is total. Use [Validate] at load time to reject malformed input
// such as a leaf that declares children; the renderers themselves ignore such
// children because a leaf never expands.
package tree

import (
	"fmt"
	"strings"

	errs "github.com/kunhq/kundocs/pkg/errors"
)

// Kind distinguishes leaves (files, items) from branches (directories, groups).
type Kind string

const (
	KindLeaf   Kind = "leaf"
	KindBranch Kind = "branch"
)

// UnmarshalText accepts the canonical names plus the file/directory aliases.
func (k *Kind) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "leaf", "file":
		*k = KindLeaf
	case "branch", "directory", "dir":
		*k = KindBranch
	default:
		return errs.New(errs.ErrCodeInvalidKind, "unknown tree node kind %q (want leaf or branch)", string(b))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

// Node is one entry of a structure diagram. Children are kept in display
// order and only branches may have them.
type Node struct {
	Name        string `json:"name" toml:"name" yaml:"name"`
	Kind        Kind   `json:"kind" toml:"kind" yaml:"kind"`
	Description string `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Children    []Node `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`
}

// Leaf builds a leaf node.
func Leaf(name, description string) Node {
	return Node{Name: name, Kind: KindLeaf, Description: description}
}

// Branch builds a branch node with the given children.
func Branch(name, description string, children ...Node) Node {
	return Node{Name: name, Kind: KindBranch, Description: description, Children: children}
}

// IsBranch reports whether n is a branch.
func (n Node) IsBranch() bool { return n.Kind == KindBranch }

// Count returns the number of nodes in the subtree rooted at n, excluding
// children of leaves.
func (n Node) Count() int {
	c := 1
	if n.IsBranch() {
		for _, ch := range n.Children {
			c += ch.Count()
		}
	}
	return c
}

// Validate checks that every node has a name and a known kind and that no
// leaf declares children. The returned error names the offending node by its
// path from the root.
func Validate(root Node) error {
	return validate(root, nil)
}

func validate(n Node, path []string) error {
	path = append(path[:len(path):len(path)], displayName(n))
	where := strings.Join(path, " > ")

	if strings.TrimSpace(n.Name) == "" {
		return errs.New(errs.ErrCodeInvalidDiagram, "node at %s has no name", where)
	}
	switch n.Kind {
	case KindLeaf:
		if len(n.Children) > 0 {
			return errs.New(errs.ErrCodeInvalidDiagram, "leaf %s has %d children", where, len(n.Children))
		}
	case KindBranch:
		for _, ch := range n.Children {
			if err := validate(ch, path); err != nil {
				return err
			}
		}
	case "":
		return errs.New(errs.ErrCodeInvalidDiagram, "node %s has no kind", where)
	default:
		return errs.New(errs.ErrCodeInvalidKind, "node %s has unknown kind %q", where, n.Kind)
	}
	return nil
}

func displayName(n Node) string {
	if n.Name == "" {
		return "(unnamed)"
	}
	return n.Name
}

// Context is the ancestry state threaded through one render pass.
// ParentIsLast[i] records whether the ancestor at depth i was the last of its
// siblings; its length always equals Depth.
type Context struct {
	Depth        int
	IsLast       bool
	ParentIsLast []bool
}

// Root returns the context of the first call: depth 0, last, no ancestors.
func Root() Context {
	return Context{IsLast: true}
}

// Child returns the context for a child of the current node. The ancestry
// slice is copied so sibling subtrees never share backing storage.
func (c Context) Child(isLast bool) Context {
	pil := make([]bool, len(c.ParentIsLast), len(c.ParentIsLast)+1)
	copy(pil, c.ParentIsLast)
	return Context{
		Depth:        c.Depth + 1,
		IsLast:       isLast,
		ParentIsLast: append(pil, c.IsLast),
	}
}

// Guides returns the columns, in increasing order, where an ancestor's
// vertical line passes through a row with this context. Column k belongs to
// the ancestor at depth k and is drawn when that ancestor is not the last of
// its siblings. The root column is never drawn.
func (c Context) Guides() []int {
	var cols []int
	for k := 1; k < c.Depth && k < len(c.ParentIsLast); k++ {
		if !c.ParentIsLast[k] {
			cols = append(cols, k)
		}
	}
	return cols
}

// Continues reports whether the node's own column line extends below its
// row, i.e. it has later siblings.
func (c Context) Continues() bool {
	return c.Depth > 0 && !c.IsLast
}

// Row is one laid-out node.
type Row struct {
	Depth       int
	Name        string
	Kind        Kind
	Description string
	IsLast      bool
	Guides      []int
	Continues   bool
	Expanded    bool
}

// HasGuide reports whether col is one of the row's ancestor guide columns.
func (r Row) HasGuide(col int) bool {
	for _, g := range r.Guides {
		if g == col {
			return true
		}
	}
	return false
}

func (r Row) String() string {
	return fmt.Sprintf("%d:%s", r.Depth, r.Name)
}

// Layout flattens the tree into rows in depth-first display order.
func Layout(root Node) []Row {
	rows := make([]Row, 0, root.Count())
	Walk(root, func(n Node, ctx Context) {
		rows = append(rows, Row{
			Depth:       ctx.Depth,
			Name:        n.Name,
			Kind:        n.Kind,
			Description: n.Description,
			IsLast:      ctx.IsLast,
			Guides:      ctx.Guides(),
			Continues:   ctx.Continues(),
			Expanded:    expands(n),
		})
	})
	return rows
}

// Walk calls fn for every node in display order with its ancestry context.
// Children of leaves are not visited.
func Walk(root Node, fn func(Node, Context)) {
	walk(root, Root(), fn)
}

func walk(n Node, ctx Context, fn func(Node, Context)) {
	fn(n, ctx)
	if !expands(n) {
		return
	}
	last := len(n.Children) - 1
	for i, ch := range n.Children {
		walk(ch, ctx.Child(i == last), fn)
	}
}

func expands(n Node) bool {
	return n.IsBranch() && len(n.Children) > 0
}
