package cli

import (
	"io"
	"log/slog"
	"testing"

	"github.com/alexanderramin/homedesigns/internal/onboarding"
	"github.com/alexanderramin/homedesigns/internal/sink"
	"github.com/alexanderramin/homedesigns/internal/teatest"
)

// testApp returns an App whose submissions land in the returned Recorder.
func testApp(t *testing.T) (*App, *sink.Recorder) {
	t.Helper()
	rec := &sink.Recorder{}
	return testAppWithSink(t, rec), rec
}

func testAppWithSink(t *testing.T, s onboarding.Sink) *App {
	t.Helper()
	return &App{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sink:          s,
		IsInteractive: func() bool { return false },
	}
}

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, shared state, the open dialog).
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the host model at 120x40 and drains Init.
func NewTestDriver(t *testing.T, app *App, openDialog bool) *TestDriver {
	t.Helper()
	m := newAppModel(app, openDialog)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// IsQuitting reports whether a quit was requested.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}

// Dialog returns the open onboarding dialog, or nil.
func (d *TestDriver) Dialog() *onboardingView {
	m := d.appModel()
	v, _ := m.activeView().(*onboardingView)
	return v
}

// Notice returns the status-bar acknowledgement.
func (d *TestDriver) Notice() string {
	return d.appModel().notice
}

// SelectProfessionalOption picks the professional card and moves the cursor
// to the option at idx, then selects it.
func (d *TestDriver) SelectProfessionalOption(idx int) {
	d.T.Helper()
	d.PressKey('b')
	for i := 0; i < idx; i++ {
		d.PressDown()
	}
	d.PressEnter()
}
