package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/homedesigns/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Violet/teal palette matching the web brand gradient.
var (
	ColorPrimary = lipgloss.Color("#a78bfa")
	ColorAccent  = lipgloss.Color("#2dd4bf")
	ColorGreen   = lipgloss.Color("#8ec07c")
	ColorRed     = lipgloss.Color("#fb4934")
	ColorDim     = lipgloss.Color("#928374")
	ColorFg      = lipgloss.Color("#ebdbb2")
	ColorHeader  = lipgloss.Color("#c084fc")
)

var (
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleGreen   = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleRed     = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg      = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UserTypeIcon returns the glyph shown next to a user type.
func UserTypeIcon(u domain.UserType) string {
	switch u {
	case domain.UserPersonal:
		return "⌂"
	case domain.UserProfessional:
		return "▦"
	default:
		return "?"
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Brand renders the product name.
func Brand() string {
	return StylePrimary.Bold(true).Render("HomeDesigns") + StyleAccent.Bold(true).Render("AI")
}
