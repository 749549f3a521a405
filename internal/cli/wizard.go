package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/homedesigns/internal/cli/formatter"
	"github.com/alexanderramin/homedesigns/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// homedesignsHuhTheme returns a huh theme using the brand palette.
func homedesignsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorPrimary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorPrimary).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorPrimary)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorPrimary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// classifyAnswers holds the values bound to the classify prompts.
type classifyAnswers struct {
	userType    domain.UserType
	subCategory domain.SubCategory
	otherText   string
}

func userTypeOptions() []huh.Option[domain.UserType] {
	opts := make([]huh.Option[domain.UserType], 0, len(domain.UserTypes))
	for _, u := range domain.UserTypes {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s: %s", u.Label(), u.Description()), u))
	}
	return opts
}

func subCategoryOptions(u domain.UserType) []huh.Option[domain.SubCategory] {
	src := u.Options()
	opts := make([]huh.Option[domain.SubCategory], 0, len(src))
	for _, o := range src {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}
	return opts
}

// validateOtherText rejects blank professions.
func validateOtherText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("please specify your profession")
	}
	return nil
}

// classifyForm builds the prompt sequence: user type, then the options for
// that type, then the profession field when "other" was picked.
func classifyForm(a *classifyAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.UserType]().
				Title("Welcome to HomeDesignsAI").
				Description("Tell us about yourself to get started").
				Options(userTypeOptions()...).
				Value(&a.userType),
		),
		huh.NewGroup(
			huh.NewSelect[domain.SubCategory]().
				Title("What best describes your needs?").
				OptionsFunc(func() []huh.Option[domain.SubCategory] {
					return subCategoryOptions(a.userType)
				}, &a.userType).
				Value(&a.subCategory),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Please specify your profession").
				Placeholder("Enter your profession...").
				Value(&a.otherText).
				Validate(validateOtherText),
		).WithHideFunc(func() bool {
			return !a.subCategory.RequiresOtherText()
		}),
	).WithTheme(homedesignsHuhTheme()).WithShowHelp(false)
}
