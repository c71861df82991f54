package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status lines go to the command's error stream so stdout only ever carries
// rendered diagrams, tables and definitions.

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleLink      = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)

	styleOK          = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel       = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const separator = " · "

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleOK.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleWarning.Render("! "+fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleDim.Render("›")+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line under a status line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleLabel.Render(key)+" "+StyleValue.Render(value))
}

// printStats summarizes a render: diagram kind, element count, warnings and
// whether every artifact came from the cache.
func printStats(w io.Writer, kind string, elements, warnings int, cached bool) {
	parts := []string{kind}
	if elements > 0 {
		parts = append(parts, fmt.Sprintf("%d elements", elements))
	}
	if warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", warnings))
	}
	status := StyleDim.Render("fresh")
	if cached {
		status = styleOK.Render("cached")
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(parts, separator)+separator)+status)
}

func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
