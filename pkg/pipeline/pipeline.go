// Package pipeline turns validated diagram documents into output artifacts.
//
// It is the one place where the CLI and the preview server meet the
// renderers: [Options] carries the output formats and render switches,
// [Render] produces the bytes for each format, and [Runner] adds artifact
// caching, logging and observability hooks around it.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, doc, pipeline.Options{Formats: []string{"svg", "png"}})
//	svg := res.Artifacts["svg"]
//
// Text, SVG, HTML and DOT come straight from the diagram sinks. JSON is the
// document itself, re-encoded. PNG and PDF are converted from the SVG by
// [render.ToPNG] and [render.ToPDF]. With [LayoutNodeLink] a flow's SVG is
// laid out by Graphviz from its DOT instead of the row sink.
//
// [render.ToPNG]: github.com/kunhq/kundocs/pkg/render.ToPNG
// [render.ToPDF]: github.com/kunhq/kundocs/pkg/render.ToPDF
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kunhq/kundocs/pkg/cache"
	"github.com/kunhq/kundocs/pkg/diagram"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

// Output formats.
const (
	FormatText = string(diagram.FormatText)
	FormatSVG  = string(diagram.FormatSVG)
	FormatHTML = string(diagram.FormatHTML)
	FormatDOT  = string(diagram.FormatDOT)
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// DefaultFormat is rendered when Options.Formats is empty.
const DefaultFormat = FormatSVG

// DefaultScale is the PNG scale factor.
const DefaultScale = 2.0

// Flow layouts for svg, png and pdf.
const (
	// LayoutRows draws one "from → to" row per edge, in edge order.
	LayoutRows = "rows"
	// LayoutNodeLink lets Graphviz place each node once and route the edges.
	LayoutNodeLink = "nodelink"
)

// ValidLayouts lists the accepted Options.Layout values.
var ValidLayouts = []string{LayoutRows, LayoutNodeLink}

// ValidFormats lists every output format in display order.
var ValidFormats = []string{FormatText, FormatSVG, FormatHTML, FormatDOT, FormatJSON, FormatPNG, FormatPDF}

// Options configures one pipeline run.
type Options struct {
	Formats   []string `json:"formats,omitempty"`
	Large     bool     `json:"large,omitempty"`
	NoIcons   bool     `json:"no_icons,omitempty"`
	Plain     bool     `json:"plain,omitempty"`
	Lang      string   `json:"lang,omitempty"`
	ClassName string   `json:"class_name,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	// Layout selects how flows are drawn in svg, png and pdf. Empty means
	// LayoutRows.
	Layout string `json:"layout,omitempty"`
	// Refresh skips cache reads but still stores fresh artifacts.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the artifacts of one run.
type Result struct {
	ID string
	// DocHash is the content hash used for cache keys.
	DocHash   string
	Artifacts map[string][]byte
	// Warnings are non-fatal document problems, such as dangling flow edges.
	Warnings []string
	Stats    Stats
	// CacheHits lists the formats served from cache.
	CacheHits []string
}

// Stats contains run statistics.
type Stats struct {
	Elements   int
	RenderTime time.Duration
}

// CacheHit reports whether every requested format came from cache.
func (r *Result) CacheHit() bool {
	return len(r.CacheHits) > 0 && len(r.CacheHits) == len(r.Artifacts)
}

// ValidateFormat checks a single format name.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks every format. An empty list is valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated flag value, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// ValidateAndSetDefaults validates the formats and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Layout == "" {
		o.Layout = LayoutRows
	}
	if !slices.Contains(ValidLayouts, o.Layout) {
		return errs.New(errs.ErrCodeInvalidInput, "invalid layout: %q (must be one of: %s)",
			o.Layout, strings.Join(ValidLayouts, ", "))
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RenderOptions returns the options passed to [diagram.Document.Render].
func (o *Options) RenderOptions() diagram.Options {
	return diagram.Options{
		Large:     o.Large,
		NoIcons:   o.NoIcons,
		Plain:     o.Plain,
		Lang:      o.Lang,
		ClassName: o.ClassName,
	}
}

// ArtifactKeyOpts returns the cache key options for format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:    format,
		Large:     o.Large,
		NoIcons:   o.NoIcons,
		Lang:      o.Lang,
		ClassName: o.ClassName,
	}
	switch format {
	case FormatText:
		k.Plain = o.Plain
	case FormatPNG:
		k.Scale = o.Scale
	}
	if o.nodeLink() && usesSVG(format) {
		k.Layout = LayoutNodeLink
	}
	return k
}

func (o *Options) nodeLink() bool { return o.Layout == LayoutNodeLink }

// usesSVG reports whether format is the SVG or converted from it.
func usesSVG(format string) bool {
	return format == FormatSVG || format == FormatPNG || format == FormatPDF
}
