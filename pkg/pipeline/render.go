package pipeline

import (
	"context"
	"fmt"

	"github.com/kunhq/kundocs/pkg/diagram"
	"github.com/kunhq/kundocs/pkg/diagram/flow"
	errs "github.com/kunhq/kundocs/pkg/errors"
	kio "github.com/kunhq/kundocs/pkg/io"
	"github.com/kunhq/kundocs/pkg/render"
)

// Render produces every format in opts.Formats for d. The SVG is rendered at
// most once and shared by the svg, png and pdf outputs.
func Render(ctx context.Context, d diagram.Document, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	ro := opts.RenderOptions()

	var svg []byte
	svgOnce := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		if !opts.nodeLink() {
			var err error
			svg, err = d.Render(diagram.FormatSVG, ro)
			return svg, err
		}
		if d.Kind != diagram.KindFlow {
			return nil, errs.New(errs.ErrCodeUnsupported, "%s layout is only available for flow diagrams", LayoutNodeLink)
		}
		dot, err := d.Render(diagram.FormatDOT, ro)
		if err != nil {
			return nil, err
		}
		svg, err = flow.RenderDOTSVG(ctx, string(dot))
		return svg, err
	}

	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatText, FormatHTML, FormatDOT:
			data, err = d.Render(diagram.Format(format), ro)
		case FormatSVG:
			data, err = svgOnce()
		case FormatJSON:
			data, err = kio.MarshalDocument(d, kio.SyntaxJSON)
		case FormatPNG:
			if data, err = svgOnce(); err == nil {
				data, err = render.ToPNG(ctx, data, opts.Scale)
			}
		case FormatPDF:
			if data, err = svgOnce(); err == nil {
				data, err = render.ToPDF(ctx, data)
			}
		default:
			err = errs.New(errs.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		out[format] = data
	}
	return out, nil
}
