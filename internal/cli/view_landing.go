package cli

import (
	"strings"

	"github.com/alexanderramin/homedesigns/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type feature struct {
	icon  string
	title string
	blurb string
}

var landingFeatures = []feature{
	{icon: "✦", title: "Magic Redesign", blurb: "Transform any space instantly with our conversational AI"},
	{icon: "◐", title: "Perfect Redesign", blurb: "Complete redesign with enhanced results and structural preservation"},
	{icon: "⌂", title: "Virtual Staging", blurb: "Stage spaces with realistic furniture and decor visualization"},
}

var landingKeys = struct {
	GetStarted key.Binding
	StartNow   key.Binding
	Gallery    key.Binding
}{
	GetStarted: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "get started")),
	StartNow:   key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "start now")),
	Gallery:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view gallery")),
}

// landingView is the marketing page that hosts the onboarding dialog.
type landingView struct {
	state *SharedState
}

func newLandingView(state *SharedState) *landingView {
	return &landingView{state: state}
}

func (v *landingView) ID() ViewID    { return ViewLanding }
func (v *landingView) Title() string { return "" }

func (v *landingView) ShortHelp() []key.Binding {
	return []key.Binding{landingKeys.GetStarted, landingKeys.StartNow, landingKeys.Gallery}
}

func (v *landingView) Init() tea.Cmd { return nil }

func (v *landingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, landingKeys.GetStarted), key.Matches(keyMsg, landingKeys.StartNow):
		return v, pushView(newOnboardingView(v.state))
	case key.Matches(keyMsg, landingKeys.Gallery):
		return v, notice(formatter.Dim("The gallery is not available yet."))
	}
	return v, nil
}

func (v *landingView) View() string {
	width := v.state.Width
	if width <= 0 {
		width = 100
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Render(formatter.StylePrimary.Bold(true).Render("MAGIC REDESIGN")))
	b.WriteString("\n\n")
	b.WriteString(center.Render(formatter.Dim(
		"Transform your spaces with advanced AI that generates stunning designs based on your instructions.")))
	b.WriteString("\n\n")

	actions := formatter.Button("✦ Start Now", true, false) + "   " + formatter.Button("◐ View Gallery", false, false)
	b.WriteString(center.Render(actions))
	b.WriteString("\n\n")

	cardWidth := min(30, max(18, (width-12)/3))
	cards := make([]string, 0, len(landingFeatures))
	for _, f := range landingFeatures {
		cards = append(cards, formatter.Card(cardWidth, false,
			formatter.StyleAccent.Render(f.icon),
			formatter.Bold(f.title),
			formatter.Dim(f.blurb),
		))
	}
	b.WriteString(center.Render(lipgloss.JoinHorizontal(lipgloss.Top, cards...)))
	b.WriteString("\n")

	if rec := v.state.LastRecord; rec != nil {
		b.WriteString("\n")
		b.WriteString(center.Render(formatter.Dim("Signed up as ") + formatter.Bold(rec.Summary())))
		b.WriteString("\n")
	}
	return b.String()
}
