package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUI starts the landing screen with the dialog open. Log output is held
// back while the program owns the terminal and flushed on exit.
func runTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithInput(app.Stdin)}
	if app.Config.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if app.logOut != nil {
		app.logOut.Hold()
		defer func() { _ = app.logOut.Release() }()
	}

	p := tea.NewProgram(newAppModel(app, true), opts...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	if m, ok := final.(appModel); ok && m.state.LastRecord != nil {
		app.Logger.Debug("tui closed", "classified", m.state.LastRecord.Summary())
	}
	return nil
}
