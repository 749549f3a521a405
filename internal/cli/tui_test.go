package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/homedesigns/internal/domain"
	"github.com/alexanderramin/homedesigns/internal/onboarding"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DialogOpenOnStartup(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, true)

	assert.Equal(t, ViewOnboarding, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())

	view := d.View()
	assert.Contains(t, view, "Welcome to HomeDesignsAI")
	assert.Contains(t, view, "Personal")
	assert.Contains(t, view, "Professional")
}

func TestTUI_LandingWithoutDialog(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, false)

	assert.Equal(t, ViewLanding, d.ActiveViewID())
	view := d.View()
	assert.Contains(t, view, "MAGIC REDESIGN")
	assert.Contains(t, view, "Virtual Staging")
	assert.Contains(t, view, "q: quit")
}

func TestTUI_ScenarioA_PersonalSingleProject(t *testing.T) {
	app, rec := testApp(t)
	d := NewTestDriver(t, app, true)

	d.PressKey('p')
	require.NotNil(t, d.Dialog())
	assert.Equal(t, domain.UserPersonal, d.Dialog().form.UserType())

	d.PressEnter() // cursor starts on "Single Project"
	assert.Equal(t, domain.SubSingleProject, d.Dialog().form.SubCategory())

	d.PressTab()
	d.PressEnter()

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, domain.Record{UserType: domain.UserPersonal, SubCategory: domain.SubSingleProject}, records[0])
	assert.Nil(t, records[0].OtherText)

	assert.Equal(t, ViewLanding, d.ActiveViewID())
	assert.Contains(t, d.Notice(), "Welcome aboard")
	assert.Contains(t, d.View(), "Signed up as")
}

func TestTUI_ScenarioB_ProfessionalOther(t *testing.T) {
	app, rec := testApp(t)
	d := NewTestDriver(t, app, true)

	d.SelectProfessionalOption(5)
	require.NotNil(t, d.Dialog())
	assert.Equal(t, domain.SubOther, d.Dialog().form.SubCategory())
	assert.Equal(t, focusOtherText, d.Dialog().focus)
	assert.Contains(t, d.View(), "Please specify your profession")

	d.Type("Home Stager")
	d.PressEnter()

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, domain.UserProfessional, records[0].UserType)
	assert.Equal(t, domain.SubOther, records[0].SubCategory)
	require.NotNil(t, records[0].OtherText)
	assert.Equal(t, "Home Stager", *records[0].OtherText)
	assert.Equal(t, ViewLanding, d.ActiveViewID())
}

func TestTUI_ScenarioC_WhitespaceBlocksSubmit(t *testing.T) {
	app, rec := testApp(t)
	d := NewTestDriver(t, app, true)

	d.SelectProfessionalOption(5)
	d.Type("   ")
	d.PressEnter()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Empty(t, rec.Records())
	assert.Equal(t, ViewOnboarding, d.ActiveViewID())
	require.NotNil(t, d.Dialog())
	assert.False(t, d.Dialog().form.Submittable())
}

func TestTUI_ScenarioD_ChangeSwapsOptions(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, true)

	d.PressKey('p')
	d.PressEnter()
	assert.Contains(t, d.View(), "Single Project")

	d.PressKey('c')
	require.NotNil(t, d.Dialog())
	assert.Equal(t, onboarding.StageUnset, d.Dialog().form.Stage())

	d.PressKey('b')
	dlg := d.Dialog()
	assert.Equal(t, domain.UserProfessional, dlg.form.UserType())
	assert.Empty(t, dlg.form.SubCategory())

	view := d.View()
	assert.Contains(t, view, "Real Estate")
	assert.Contains(t, view, "Property Development")
	assert.NotContains(t, view, "Single Project")
}

func TestTUI_ArrowsAndEnterChooseCard(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, true)

	d.PressRight()
	d.PressEnter()

	assert.Equal(t, domain.UserProfessional, d.Dialog().form.UserType())
	assert.Contains(t, d.View(), "Professional User")
}

func TestTUI_EscClosesWithoutEmitting(t *testing.T) {
	app, rec := testApp(t)
	d := NewTestDriver(t, app, true)

	d.PressKey('p')
	d.PressEsc()

	assert.Equal(t, ViewLanding, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Empty(t, rec.Records())
	assert.Empty(t, d.Notice())
}

func TestTUI_ReopenStartsFresh(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, true)

	d.PressKey('p')
	d.PressEsc()
	d.PressKey('g')

	require.Equal(t, ViewOnboarding, d.ActiveViewID())
	assert.Equal(t, onboarding.StageUnset, d.Dialog().form.Stage())

	d.PressEsc()
	d.PressKey('s')
	assert.Equal(t, ViewOnboarding, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
}

func TestTUI_QuitOnlyFromLanding(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, true)

	d.PressKey('q')
	assert.False(t, d.IsQuitting(), "q inside the dialog must not quit")

	d.PressEsc()
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_CtrlCQuitsFromDialog(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, true)

	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_TypingShortcutLettersInProfessionField(t *testing.T) {
	app, rec := testApp(t)
	d := NewTestDriver(t, app, true)

	d.SelectProfessionalOption(5)
	d.Type("qcbp")

	assert.Equal(t, ViewOnboarding, d.ActiveViewID())
	assert.Equal(t, "qcbp", d.Dialog().form.OtherText())

	d.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Len(t, rec.Records(), 1)
}

func TestTUI_SubmitDisabledWithoutSubCategory(t *testing.T) {
	app, rec := testApp(t)
	d := NewTestDriver(t, app, true)

	d.PressKey('p')
	d.PressTab()
	d.PressEnter()

	assert.Empty(t, rec.Records())
	assert.Equal(t, ViewOnboarding, d.ActiveViewID())
}

func TestTUI_SinkErrorKeepsDialogOpen(t *testing.T) {
	failing := onboarding.SinkFunc(func(context.Context, domain.Record) error {
		return errors.New("webhook down")
	})
	app := testAppWithSink(t, failing)
	d := NewTestDriver(t, app, true)

	d.PressKey('p')
	d.PressEnter()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, ViewOnboarding, d.ActiveViewID())
	assert.Contains(t, d.View(), "webhook down")
	assert.Equal(t, domain.SubSingleProject, d.Dialog().form.SubCategory())
}

func TestTUI_GalleryShowsNotice(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, false)

	d.PressKey('v')
	assert.Contains(t, d.Notice(), "gallery")
	assert.Equal(t, ViewLanding, d.ActiveViewID())
}

func TestTUI_SwitchingSubCategoryAwayFromOtherHidesField(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, true)

	d.SelectProfessionalOption(5)
	d.Type("Stager")
	d.Send(tea.KeyMsg{Type: tea.KeyShiftTab}) // back to options
	require.Equal(t, focusOptions, d.Dialog().focus)

	d.PressUp()
	d.PressEnter()
	assert.Equal(t, domain.SubPropertyDevelopment, d.Dialog().form.SubCategory())
	assert.NotContains(t, d.View(), "Please specify your profession")
	assert.True(t, d.Dialog().form.Submittable())
}
