// Package pkg holds the kundocs libraries.
//
// kundocs renders the diagrams of the Kun documentation site: structure
// trees with connector lines, flow charts of from → to rows, badge grids,
// stacked blocks and numbered step lists. Every diagram can be drawn as
// terminal text, SVG or HTML; flow charts also as Graphviz DOT.
//
// # Data flow
//
//	catalog literal / definition file (JSON, TOML, YAML)
//	         ↓
//	    [diagram.Document] (Validate, Warnings)
//	         ↓
//	    [pipeline] (options, artifact cache, hooks)
//	         ↓
//	    txt / svg / html / dot / json, and png / pdf via [render]
//
// # Quick start
//
//	import (
//	    "github.com/kunhq/kundocs/pkg/catalog"
//	    "github.com/kunhq/kundocs/pkg/diagram"
//	)
//
//	d, _ := catalog.Get("phase1-flow")
//	svg, _ := d.Render(diagram.FormatSVG, diagram.Options{Lang: "ar"})
//
// Or from a file, through the cached pipeline:
//
//	d, err := io.ImportDocument("diagrams/deploy.yaml")
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Execute(ctx, d, pipeline.Options{Formats: []string{"svg", "png"}})
//
// # Packages
//
//   - [diagram] and its subpackages tree, flow, grid, stepper, icon and style:
//     the models, layouts and sinks
//   - [catalog]: the built-in Kun diagrams with English and Arabic titles
//   - [io]: definition file import and export
//   - [pipeline]: format selection, rendering and artifact caching
//   - [cache]: file, redis and null artifact caches
//   - [render]: SVG to PNG and PDF conversion with rsvg-convert
//   - [observability]: render, cache and server hooks
//   - [errors]: coded errors
//   - [buildinfo]: version data set at link time
//
// [diagram.Document]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/diagram#Document
// [diagram]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/diagram
// [catalog]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/catalog
// [io]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/cache
// [render]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/render
// [observability]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/observability
// [errors]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/kunhq/kundocs/pkg/buildinfo
package pkg
