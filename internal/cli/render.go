package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kunhq/kundocs/pkg/catalog"
	"github.com/kunhq/kundocs/pkg/diagram"
	errs "github.com/kunhq/kundocs/pkg/errors"
	kio "github.com/kunhq/kundocs/pkg/io"
	"github.com/kunhq/kundocs/pkg/pipeline"
)

// renderOpts holds the flags of the render command that are not
// configuration keys.
type renderOpts struct {
	formats   string  // comma separated output formats
	output    string  // output file (one format) or base path (several)
	plain     bool    // no terminal styling in txt output
	noCache   bool    // bypass the artifact cache entirely
	refresh   bool    // re-render and overwrite cached artifacts
	scale     float64 // PNG scale factor
	className string  // extra class on the tree HTML root
	layout    string  // flow layout for svg, png and pdf
}

// binaryFormats are never written to a terminal.
var binaryFormats = []string{pipeline.FormatPNG, pipeline.FormatPDF}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file|diagram-id>",
		Short: "Render a diagram to txt, svg, html, dot, json, png or pdf",
		Long: `Render a definition file or a catalog diagram.

With a single text format and no --output the result goes to stdout.
Several formats, or png/pdf, are written to files named after --output
(or the diagram id) with the format as extension.`,
		Example: `  kundocs render phase1-flow -f txt
  kundocs render end-to-end-flow -f svg --layout nodelink
  kundocs render diagrams/deploy.yaml -f svg,png -o build/deploy
  kundocs render structure -f html --lang ar`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDiagramIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.DefaultFormat,
		"output format(s), comma separated: "+strings.Join(pipeline.ValidFormats, ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (one format) or base path (several)")
	cmd.Flags().Bool("large", false, "use the large flow profile")
	cmd.Flags().Bool("no-icons", false, "hide flow icons")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable colors in txt output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.className, "class", "", "CSS class added to tree HTML")
	cmd.Flags().StringVar(&opts.layout, "layout", pipeline.LayoutRows,
		"flow layout for svg/png/pdf: "+strings.Join(pipeline.ValidLayouts, ", "))
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("layout", cobra.FixedCompletions(pipeline.ValidLayouts, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := c.conf()

	doc, err := loadDocument(input)
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Formats:   pipeline.ParseFormats(opts.formats),
		Large:     cfg.Render.Large,
		NoIcons:   !cfg.Render.ShowIcons,
		Plain:     opts.plain,
		Lang:      cfg.Lang,
		ClassName: opts.className,
		Scale:     opts.scale,
		Layout:    opts.layout,
		Refresh:   opts.refresh,
		Logger:    logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	toStdout := opts.output == "" && len(popts.Formats) == 1 && !slices.Contains(binaryFormats, popts.Formats[0])
	if !toStdout {
		popts.Plain = true
	}

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	var spin *Spinner
	if !toStdout && slices.ContainsFunc(popts.Formats, func(f string) bool { return slices.Contains(binaryFormats, f) }) {
		spin = newSpinnerWithContext(ctx, "Converting "+doc.ID)
		spin.Start()
	}
	prog := newProgress(logger)
	res, err := runner.Execute(ctx, doc, popts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if toStdout {
		_, err := cmd.OutOrStdout().Write(res.Artifacts[popts.Formats[0]])
		return err
	}

	paths := outputPaths(opts.output, doc.ID, popts.Formats)
	for _, f := range popts.Formats {
		if err := writeArtifact(paths[f], res.Artifacts[f]); err != nil {
			return err
		}
	}
	prog.done("Rendered " + doc.ID)

	status := cmd.ErrOrStderr()
	printSuccess(status, "Rendered %s", StyleHighlight.Render(doc.ID))
	for _, f := range popts.Formats {
		printFile(status, paths[f])
	}
	printStats(status, string(doc.Kind), res.Stats.Elements, len(res.Warnings), res.CacheHit())
	for _, w := range res.Warnings {
		printWarning(status, "%s", w)
	}
	return nil
}

// loadDocument prefers an existing file over a catalog diagram of the same
// name.
func loadDocument(input string) (diagram.Document, error) {
	if _, err := os.Stat(input); err == nil {
		return kio.ImportDocument(input)
	}
	if catalog.Has(input) {
		return catalog.Get(input)
	}
	if kio.IsDefinition(input) {
		return kio.ImportDocument(input)
	}
	return diagram.Document{}, errs.New(errs.ErrCodeDiagramNotFound,
		"%q is neither a definition file nor a catalog diagram (see: kundocs list)", input)
}

// outputPaths maps each format to its file. A single format is written to
// output as given; several formats share output, minus any known format
// extension, as base path. An empty output uses the diagram id.
func outputPaths(output, id string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := output
	if base == "" {
		base = id
	} else if ext := strings.TrimPrefix(filepath.Ext(base), "."); slices.Contains(pipeline.ValidFormats, ext) {
		base = strings.TrimSuffix(base, "."+ext)
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// renderText renders d as terminal text for show and browse.
func (c *CLI) renderText(ctx context.Context, d diagram.Document, plain bool) ([]byte, error) {
	cfg := c.conf()
	runner := c.newRunner(ctx, false)
	defer runner.Close()
	res, err := runner.Execute(ctx, d, pipeline.Options{
		Formats: []string{pipeline.FormatText},
		Large:   cfg.Render.Large,
		NoIcons: !cfg.Render.ShowIcons,
		Plain:   plain,
		Lang:    cfg.Lang,
		Logger:  loggerFromContext(ctx),
	})
	if err != nil {
		return nil, err
	}
	return res.Artifacts[pipeline.FormatText], nil
}
