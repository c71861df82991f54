package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kunhq/kundocs/pkg/catalog"
	"github.com/kunhq/kundocs/pkg/diagram"
)

func (c *CLI) listCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := catalog.All()
			lang := c.conf().Lang
			if plain {
				for _, d := range docs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.ID, d.Kind, d.LocalizedTitle(lang))
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), catalogTable(docs, lang))
			fmt.Fprintln(cmd.OutOrStdout(), "  "+StyleNumber.Render(fmt.Sprint(len(docs)))+StyleDim.Render(" diagrams"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "tab separated output without styling")
	return cmd
}

// catalogTable renders docs as a rounded lipgloss table.
func catalogTable(docs []diagram.Document, lang string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{d.ID, string(d.Kind), d.LocalizedTitle(lang), formatsFor(d)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Kind", "Title", "Formats").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorCyan)
			case col == 1 || col == 3:
				return base.Foreground(colorDim)
			}
			return base
		})
	return t.Render()
}

// formatsFor lists the text formats d supports beyond txt, svg and html.
func formatsFor(d diagram.Document) string {
	out := []string{"txt", "svg", "html"}
	if d.Supports(diagram.FormatDOT) {
		out = append(out, "dot")
	}
	return strings.Join(out, ",")
}
