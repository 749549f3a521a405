package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/homedesigns/internal/config"
	"github.com/alexanderramin/homedesigns/internal/onboarding"
	"github.com/alexanderramin/homedesigns/internal/sink"
	"github.com/spf13/cobra"
)

// App holds the collaborators shared by all commands. Logger and Sink are
// built from Config on first use unless a caller injects them.
type App struct {
	Config config.Config
	Logger *slog.Logger
	Sink   onboarding.Sink

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// Stdin and Stderr default to the process streams.
	Stdin  io.Reader
	Stderr io.Writer

	dryRun  bool
	logOut  *holdWriter
	closers []io.Closer
}

// NewRootCmd creates the top-level "homedesigns" command. Without a
// subcommand it opens the landing screen with the onboarding dialog.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "homedesigns",
		Short:         "AI home redesign: onboarding",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.wire()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}

	app.Config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&app.dryRun, "dry-run", false, "log submissions only; skip the webhook")

	root.AddCommand(
		newClassifyCmd(app),
		newOptionsCmd(app),
	)

	return root
}

const defaultSubmitTimeout = 5 * time.Second

// submitContext bounds a single sink emission. It leaves a second of slack
// over the webhook's own timeout so the HTTP error surfaces first.
func submitContext(parent context.Context, app *App) (context.Context, context.CancelFunc) {
	timeout := defaultSubmitTimeout
	if app != nil && app.Config.WebhookTimeout > 0 {
		timeout = app.Config.WebhookTimeout + time.Second
	}
	return context.WithTimeout(parent, timeout)
}

func (a *App) wire() error {
	if a.Stdin == nil {
		a.Stdin = os.Stdin
	}
	if a.Stderr == nil {
		a.Stderr = os.Stderr
	}
	if a.IsInteractive == nil {
		a.IsInteractive = func() bool { return false }
	}
	if a.Logger == nil {
		a.logOut = newHoldWriter(a.Stderr)
		logger, closer, err := a.Config.NewLogger(a.logOut)
		if err != nil {
			return err
		}
		a.Logger = logger
		a.closers = append(a.closers, closer)
	}
	if a.Sink == nil {
		sinks := sink.Multi{sink.NewLog(a.Logger)}
		if a.Config.WebhookURL != "" && !a.dryRun {
			sinks = append(sinks, sink.NewWebhook(sink.WebhookOpts{
				URL:     a.Config.WebhookURL,
				Timeout: a.Config.WebhookTimeout,
				Retries: a.Config.WebhookRetries,
			}))
			a.Logger.Debug("webhook sink enabled", "url", a.Config.WebhookURL)
		}
		a.Sink = sinks
	}
	return nil
}

func (a *App) close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = fmt.Errorf("closing: %w", err)
		}
	}
	a.closers = nil
	return first
}
