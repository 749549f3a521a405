package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/homedesigns/internal/cli/formatter"
	"github.com/alexanderramin/homedesigns/internal/domain"
	"github.com/alexanderramin/homedesigns/internal/onboarding"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// onboardingFocus is the element that receives keys inside the dialog.
type onboardingFocus int

const (
	focusCards onboardingFocus = iota
	focusOptions
	focusOtherText
	focusSubmit
)

var onboardingKeys = struct {
	Left, Right, Up, Down key.Binding
	Choose                key.Binding
	Next, Prev            key.Binding
	Change                key.Binding
	Submit                key.Binding
	Personal              key.Binding
	Professional          key.Binding
	Close                 key.Binding
}{
	Left:         key.NewBinding(key.WithKeys("left", "h")),
	Right:        key.NewBinding(key.WithKeys("right", "l")),
	Up:           key.NewBinding(key.WithKeys("up", "k")),
	Down:         key.NewBinding(key.WithKeys("down", "j")),
	Choose:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Next:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:         key.NewBinding(key.WithKeys("shift+tab")),
	Change:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "change")),
	Submit:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "get started")),
	Personal:     key.NewBinding(key.WithKeys("p")),
	Professional: key.NewBinding(key.WithKeys("b")),
	Close:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

// onboardingView is the classification dialog. It renders an
// onboarding.Form and translates key presses into form operations.
type onboardingView struct {
	state *SharedState
	form  *onboarding.Form

	focus      onboardingFocus
	cardCursor int
	optCursor  int
	other      textinput.Model

	closed  bool
	lastErr string
}

func newOnboardingView(state *SharedState) *onboardingView {
	v := &onboardingView{state: state}

	ti := textinput.New()
	ti.Placeholder = "Enter your profession..."
	ti.CharLimit = 120
	ti.Width = 40
	ti.Prompt = formatter.StylePrimary.Render("› ")
	v.other = ti

	var sink onboarding.Sink
	if state.App != nil {
		sink = state.App.Sink
	}
	v.form = onboarding.New(onboarding.Options{
		Open:    true,
		Sink:    sink,
		OnClose: func() { v.closed = true },
	})
	return v
}

func (v *onboardingView) ID() ViewID    { return ViewOnboarding }
func (v *onboardingView) Title() string { return "Get Started" }
func (v *onboardingView) Modal() bool   { return true }

func (v *onboardingView) ShortHelp() []key.Binding {
	if v.form.UserType() == "" {
		return []key.Binding{
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "choose")),
			onboardingKeys.Choose,
			onboardingKeys.Close,
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		onboardingKeys.Choose,
		onboardingKeys.Next,
		onboardingKeys.Change,
		onboardingKeys.Submit,
		onboardingKeys.Close,
	}
}

func (v *onboardingView) Init() tea.Cmd { return nil }

func (v *onboardingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.closed {
		return v, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.focus == focusOtherText {
			var cmd tea.Cmd
			v.other, cmd = v.other.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if key.Matches(keyMsg, onboardingKeys.Close) {
		v.form.Close()
		return v, dialogClosed(nil)
	}
	if key.Matches(keyMsg, onboardingKeys.Submit) {
		return v, v.submit()
	}

	switch v.focus {
	case focusCards:
		return v, v.updateCards(keyMsg)
	case focusOptions:
		return v, v.updateOptions(keyMsg)
	case focusOtherText:
		return v, v.updateOtherText(keyMsg)
	case focusSubmit:
		return v, v.updateSubmit(keyMsg)
	}
	return v, nil
}

func (v *onboardingView) updateCards(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, onboardingKeys.Left), key.Matches(msg, onboardingKeys.Up):
		v.cardCursor = 0
	case key.Matches(msg, onboardingKeys.Right), key.Matches(msg, onboardingKeys.Down),
		key.Matches(msg, onboardingKeys.Next):
		v.cardCursor = (v.cardCursor + 1) % len(domain.UserTypes)
	case key.Matches(msg, onboardingKeys.Personal):
		v.chooseUserType(domain.UserPersonal)
	case key.Matches(msg, onboardingKeys.Professional):
		v.chooseUserType(domain.UserProfessional)
	case key.Matches(msg, onboardingKeys.Choose):
		v.chooseUserType(domain.UserTypes[v.cardCursor])
	}
	return nil
}

func (v *onboardingView) chooseUserType(u domain.UserType) {
	if err := v.form.SelectUserType(u); err != nil {
		v.lastErr = err.Error()
		return
	}
	v.lastErr = ""
	v.optCursor = 0
	v.other.Reset()
	v.other.Blur()
	v.focus = focusOptions
}

func (v *onboardingView) updateOptions(msg tea.KeyMsg) tea.Cmd {
	opts := v.form.Options()
	switch {
	case key.Matches(msg, onboardingKeys.Up):
		if v.optCursor > 0 {
			v.optCursor--
		}
	case key.Matches(msg, onboardingKeys.Down):
		if v.optCursor < len(opts)-1 {
			v.optCursor++
		}
	case key.Matches(msg, onboardingKeys.Change):
		v.change()
	case key.Matches(msg, onboardingKeys.Choose):
		if v.optCursor >= len(opts) {
			return nil
		}
		if err := v.form.SelectSubCategory(opts[v.optCursor].Value); err != nil {
			v.lastErr = err.Error()
			return nil
		}
		v.lastErr = ""
		if v.form.NeedsOtherText() {
			return v.focusOther()
		}
	case key.Matches(msg, onboardingKeys.Next):
		return v.advance(1)
	case key.Matches(msg, onboardingKeys.Prev):
		return v.advance(-1)
	}
	return nil
}

func (v *onboardingView) updateOtherText(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEnter:
		return v.submit()
	case key.Matches(msg, onboardingKeys.Next):
		return v.advance(1)
	case key.Matches(msg, onboardingKeys.Prev):
		return v.advance(-1)
	}
	var cmd tea.Cmd
	v.other, cmd = v.other.Update(msg)
	v.form.SetOtherText(v.other.Value())
	return cmd
}

func (v *onboardingView) updateSubmit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, onboardingKeys.Choose):
		return v.submit()
	case key.Matches(msg, onboardingKeys.Change):
		v.change()
	case key.Matches(msg, onboardingKeys.Up):
		v.focus = focusOptions
	case key.Matches(msg, onboardingKeys.Next):
		return v.advance(1)
	case key.Matches(msg, onboardingKeys.Prev):
		return v.advance(-1)
	}
	return nil
}

// focusOrder lists the focusable elements of the second step.
func (v *onboardingView) focusOrder() []onboardingFocus {
	if v.form.NeedsOtherText() {
		return []onboardingFocus{focusOptions, focusOtherText, focusSubmit}
	}
	return []onboardingFocus{focusOptions, focusSubmit}
}

func (v *onboardingView) advance(delta int) tea.Cmd {
	order := v.focusOrder()
	idx := 0
	for i, f := range order {
		if f == v.focus {
			idx = i
			break
		}
	}
	next := order[(idx+delta+len(order))%len(order)]
	if next == focusOtherText {
		return v.focusOther()
	}
	v.other.Blur()
	v.focus = next
	return nil
}

func (v *onboardingView) focusOther() tea.Cmd {
	v.focus = focusOtherText
	return v.other.Focus()
}

// change implements the "Change" action: back to the first step.
func (v *onboardingView) change() {
	v.form.Reset()
	v.other.Reset()
	v.other.Blur()
	v.focus = focusCards
	v.optCursor = 0
	v.lastErr = ""
}

// submit is a no-op while the form is not submittable, which is how the
// disabled "Get Started" action behaves.
func (v *onboardingView) submit() tea.Cmd {
	if !v.form.Submittable() {
		return nil
	}
	rec := v.form.Snapshot()

	var app *App
	if v.state != nil {
		app = v.state.App
	}
	ctx, cancel := submitContext(context.Background(), app)
	defer cancel()

	ok, err := v.form.Submit(ctx)
	if err != nil {
		v.lastErr = err.Error()
		if app != nil && app.Logger != nil {
			app.Logger.Error("classification submit failed", "error", err)
		}
		return nil
	}
	if !ok {
		return nil
	}
	return dialogClosed(&rec)
}

func (v *onboardingView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Dim("Tell us about yourself to get started"))
	b.WriteString("\n\n")

	if v.form.UserType() == "" {
		b.WriteString(v.renderCards())
	} else {
		b.WriteString(v.renderDetails())
	}

	if v.lastErr != "" {
		b.WriteString("\n\n")
		b.WriteString(formatter.StyleRed.Render("Error: " + v.lastErr))
	}
	return formatter.RenderBox("Welcome to HomeDesignsAI", b.String())
}

func (v *onboardingView) renderCards() string {
	cards := make([]string, 0, len(domain.UserTypes))
	for i, u := range domain.UserTypes {
		cards = append(cards, formatter.Card(32, i == v.cardCursor,
			formatter.StylePrimary.Render(formatter.UserTypeIcon(u)),
			formatter.Bold(u.Label()),
			formatter.Dim(u.Description()),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards[0], "  ", cards[1])
}

func (v *onboardingView) renderDetails() string {
	var b strings.Builder
	u := v.form.UserType()

	b.WriteString(formatter.StylePrimary.Render(formatter.UserTypeIcon(u)) + " ")
	b.WriteString(formatter.Bold(u.Label() + " User"))
	b.WriteString("   " + formatter.Dim("[c] Change"))
	b.WriteString("\n\n")

	b.WriteString(formatter.StyleFg.Render("What best describes your needs?"))
	b.WriteString("\n")
	for i, o := range v.form.Options() {
		cursor := v.focus == focusOptions && i == v.optCursor
		b.WriteString(formatter.Radio(o.Label, o.Value == v.form.SubCategory(), cursor))
		b.WriteString("\n")
	}

	if v.form.NeedsOtherText() {
		b.WriteString("\n")
		b.WriteString(formatter.StyleFg.Render("Please specify your profession"))
		b.WriteString("\n")
		b.WriteString(v.other.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Button("✔ Get Started", v.focus == focusSubmit, !v.form.Submittable()))
	return b.String()
}
