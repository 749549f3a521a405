package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(title) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// Card renders a fixed-width bordered card. Highlighted cards use the
// primary border color.
func Card(width int, highlighted bool, lines ...string) string {
	border := ColorDim
	if highlighted {
		border = ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Padding(1, 2).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// Button renders an action label. Disabled buttons are dimmed regardless of
// focus.
func Button(label string, focused, disabled bool) string {
	style := lipgloss.NewStyle().Padding(0, 2)
	switch {
	case disabled:
		style = style.Foreground(ColorDim).Faint(true)
	case focused:
		style = style.Foreground(lipgloss.Color("#ffffff")).Background(ColorPrimary).Bold(true)
	default:
		style = style.Foreground(ColorFg).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(ColorPrimary)
	}
	return style.Render(label)
}

// Radio renders a radio-group row.
func Radio(label string, selected, cursor bool) string {
	mark := "( )"
	if selected {
		mark = StyleGreen.Render("(•)")
	}
	pointer := "  "
	labelStyle := StyleFg
	if cursor {
		pointer = StylePrimary.Render("▸ ")
		labelStyle = StyleBold
	}
	return pointer + mark + " " + labelStyle.Render(label)
}
