// Package render converts rendered SVG diagrams into raster and print formats.
//
// Diagram packages under [github.com/kunhq/kundocs/pkg/diagram] only emit
// text, SVG, HTML and DOT. PNG and PDF are produced from the SVG output by
// shelling out to rsvg-convert (from librsvg):
//
//	svg, _ := doc.Render(diagram.FormatSVG, diagram.Options{})
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [Available] reports whether the converter is installed so callers can fail
// early with a useful message.
package render
