package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	kio "github.com/kunhq/kundocs/pkg/io"
)

func (c *CLI) showCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:               "show <file|diagram-id>",
		Short:             "Print a diagram as terminal text",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDiagramIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			out, err := c.renderText(cmd.Context(), doc, plain || !isTerminal(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}

func (c *CLI) sourceCommand() *cobra.Command {
	var syntax string
	var plain bool
	cmd := &cobra.Command{
		Use:   "source <file|diagram-id>",
		Short: "Print a diagram definition, syntax highlighted",
		Long: `Print the definition of a diagram in JSON, TOML or YAML.

Catalog diagrams are converted to the requested syntax, so the output can be
saved as a starting point for a definition file.`,
		Example:           `  kundocs source phase1-flow --format yaml > deploy.yaml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDiagramIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := kio.ParseSyntax(syntax)
			if err != nil {
				return err
			}
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			data, err := kio.MarshalDocument(doc, s)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if plain || !isTerminal(w) {
				_, err = w.Write(data)
				return err
			}
			return highlight(w, string(data), s)
		},
	}
	cmd.Flags().StringVarP(&syntax, "format", "f", string(kio.SyntaxTOML), "definition syntax: json, toml, yaml")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable highlighting")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"json", "toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// highlightStyle is the chroma style used for definitions.
const highlightStyle = "github-dark"

// highlight writes src to w with 256-color terminal highlighting.
func highlight(w io.Writer, src string, s kio.Syntax) error {
	lexer := lexers.Get(string(s))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", s, err)
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, it); err != nil {
		return fmt.Errorf("highlight %s: %w", s, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
