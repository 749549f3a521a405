package cli

import (
	"github.com/alexanderramin/homedesigns/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// dialogClosedMsg is sent when the onboarding dialog goes away. record is
// set only when the close followed a successful submit.
type dialogClosedMsg struct {
	record *domain.Record
}

// noticeMsg shows a transient line in the status bar.
type noticeMsg struct {
	text string
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func dialogClosed(rec *domain.Record) tea.Cmd {
	return func() tea.Msg { return dialogClosedMsg{record: rec} }
}

func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}
