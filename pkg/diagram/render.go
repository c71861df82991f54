package diagram

import (
	"github.com/kunhq/kundocs/pkg/diagram/flow"
	"github.com/kunhq/kundocs/pkg/diagram/grid"
	"github.com/kunhq/kundocs/pkg/diagram/stepper"
	"github.com/kunhq/kundocs/pkg/diagram/tree"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

// Format is an output produced directly by the diagram sinks.
type Format string

const (
	FormatText Format = "txt"
	FormatSVG  Format = "svg"
	FormatHTML Format = "html"
	FormatDOT  Format = "dot"
)

// Options adjusts a render without changing the document.
type Options struct {
	// Large forces the large flow profile even if the document does not ask for it.
	Large bool
	// NoIcons hides flow icons even if the document shows them.
	NoIcons bool
	// Plain disables terminal styling for FormatText.
	Plain bool
	// Lang selects a translated title.
	Lang string
	// ClassName is added to the outer element of tree HTML.
	ClassName string
}

// Supports reports whether the document's kind can be rendered to f.
func (d Document) Supports(f Format) bool {
	switch f {
	case FormatText, FormatSVG, FormatHTML:
		return d.Kind.Valid()
	case FormatDOT:
		return d.Kind == KindFlow
	}
	return false
}

// Render draws the document in format f. The document should have passed
// [Document.Validate]; rendering itself never fails on content, only on an
// unsupported kind or format.
func (d Document) Render(f Format, o Options) ([]byte, error) {
	if !d.Supports(f) {
		return nil, errs.New(errs.ErrCodeUnsupported, "%s diagrams cannot be rendered as %s", d.Kind, f)
	}
	title := d.LocalizedTitle(o.Lang)

	switch d.Kind {
	case KindTree:
		root := tree.Node{}
		if d.Tree != nil {
			root = *d.Tree
		}
		opts := []tree.Option{tree.WithClassName(o.ClassName)}
		if title != "" {
			opts = append(opts, tree.WithTitle(title))
		}
		if o.Plain {
			opts = append(opts, tree.WithPlain())
		}
		switch f {
		case FormatText:
			return []byte(tree.RenderText(root, opts...)), nil
		case FormatSVG:
			return tree.RenderSVG(root, opts...), nil
		default:
			return tree.RenderHTML(root, opts...), nil
		}

	case KindFlow:
		chart := flow.Chart{}
		if d.Flow != nil {
			chart = *d.Flow
		}
		fo := flow.Options{
			Title:     title,
			Large:     d.Large || o.Large,
			HideIcons: !d.showIcons() || o.NoIcons,
			Plain:     o.Plain,
		}
		switch f {
		case FormatText:
			return []byte(flow.RenderText(chart, fo)), nil
		case FormatSVG:
			return flow.RenderSVG(chart, fo), nil
		case FormatDOT:
			return []byte(flow.ToDOT(chart, fo)), nil
		default:
			return flow.RenderHTML(chart, fo), nil
		}

	case KindGrid:
		b := grid.Badges{Title: title, Sections: d.Sections}
		return renderGrid(f, o, b.RenderText, b.RenderSVG, b.RenderHTML), nil

	case KindBlocks:
		s := grid.Stack{Title: title, Blocks: d.Blocks}
		return renderGrid(f, o, s.RenderText, s.RenderSVG, s.RenderHTML), nil

	default:
		sf := stepper.Flow{Title: title, Steps: d.Steps}
		so := stepper.Options{Compact: d.compact(), Plain: o.Plain}
		switch f {
		case FormatText:
			return []byte(stepper.RenderText(sf, so)), nil
		case FormatSVG:
			return stepper.RenderSVG(sf, so), nil
		default:
			return stepper.RenderHTML(sf, so), nil
		}
	}
}

func renderGrid(f Format, o Options, text func(...grid.Option) string, svg, html func(...grid.Option) []byte) []byte {
	var opts []grid.Option
	if o.Plain {
		opts = append(opts, grid.WithPlain())
	}
	switch f {
	case FormatText:
		return []byte(text(opts...))
	case FormatSVG:
		return svg(opts...)
	default:
		return html(opts...)
	}
}
