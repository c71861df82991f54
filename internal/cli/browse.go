package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kunhq/kundocs/pkg/catalog"
	"github.com/kunhq/kundocs/pkg/diagram"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick a catalog diagram interactively and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := NewDiagramListModel(catalog.All(), c.conf().Lang)
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			sel := final.(DiagramListModel).Selected
			if sel == nil {
				return nil
			}
			return c.printDiagram(cmd.Context(), cmd, *sel)
		},
	}
}

func (c *CLI) printDiagram(ctx context.Context, cmd *cobra.Command, d diagram.Document) error {
	out, err := c.renderText(ctx, d, !isTerminal(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	if err == nil {
		printNextStep(cmd.ErrOrStderr(), "Render it", "kundocs render "+d.ID+" -f svg")
	}
	return err
}

// =============================================================================
// DiagramListModel - Interactive diagram selection
// =============================================================================

// DiagramListModel is the bubbletea model for picking a catalog diagram.
type DiagramListModel struct {
	Docs     []diagram.Document
	Lang     string
	Cursor   int
	Selected *diagram.Document
	Height   int
	Offset   int
}

// NewDiagramListModel creates a new diagram list model.
func NewDiagramListModel(docs []diagram.Document, lang string) DiagramListModel {
	return DiagramListModel{Docs: docs, Lang: lang, Height: 15}
}

func (m DiagramListModel) Init() tea.Cmd {
	return nil
}

func (m DiagramListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Docs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Docs) == 0 {
				return m, nil
			}
			d := m.Docs[m.Cursor]
			m.Selected = &d
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m DiagramListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Diagram"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ show  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Docs))
	for i := m.Offset; i < end; i++ {
		d := m.Docs[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-20s %-8s %s", cursor, d.ID, d.Kind, d.LocalizedTitle(m.Lang))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Docs)), len(m.Docs))))
	return b.String()
}
