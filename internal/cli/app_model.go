package cli

import (
	"strings"

	"github.com/alexanderramin/homedesigns/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model. The landing view is the bottom of
// the stack; the onboarding dialog is pushed over it while open.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient acknowledgement shown in the status bar.
	notice string
}

// newAppModel builds the host. openDialog mirrors the landing page showing
// the dialog on first load.
func newAppModel(app *App, openDialog bool) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}
	m.viewStack = []View{newLandingView(state)}
	if openDialog {
		m.viewStack = append(m.viewStack, newOnboardingView(state))
	}
	return m
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// dialogOpen reports whether the onboarding dialog is on screen.
func (m *appModel) dialogOpen() bool {
	v := m.activeView()
	return v != nil && v.ID() == ViewOnboarding
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.viewStack {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		if m.dialogOpen() && msg.view.ID() == ViewOnboarding {
			return m, nil
		}
		m.notice = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case dialogClosedMsg:
		if m.dialogOpen() {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		if msg.record != nil {
			rec := *msg.record
			m.state.LastRecord = &rec
			m.notice = formatter.StyleGreen.Render("✔") + " Welcome aboard: " + rec.Summary()
		}
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// The dialog owns every other key while it is open, including 'q'
	// typed into the profession field.
	if !m.dialogOpen() && msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader(), m.renderContent(), m.renderStatusBar()}
	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	header := formatter.Brand()
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderContent() string {
	v := m.activeView()
	if v == nil {
		return ""
	}
	if mv, ok := v.(modalView); ok && mv.Modal() && m.state.Width > 0 {
		return lipgloss.Place(m.state.Width, m.state.ContentHeight(),
			lipgloss.Center, lipgloss.Center, v.View())
	}
	return v.View()
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if !m.dialogOpen() {
		hints = append(hints, formatter.Dim("q: quit"))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	line := strings.Join(hints, "  ")
	if m.notice != "" {
		line = m.notice + "   " + line
	}
	return sep + "\n" + line
}
