package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/homedesigns/internal/domain"
	"github.com/alexanderramin/homedesigns/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- options ---

func TestOptionsCmd_All(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "single-project")
	assert.Contains(t, out, "property-development")
}

func TestOptionsCmd_SingleType(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "options", "personal")
	require.NoError(t, err)
	assert.Contains(t, out, "ongoing-project")
	assert.NotContains(t, out, "real-estate")
}

func TestOptionsCmd_UnknownType(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "options", "robot")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownUserType)
}

// --- classify ---

func TestClassifyCmd_FlagsPersonal(t *testing.T) {
	app, rec := testApp(t)
	out, err := executeCmd(t, app, "classify", "--user-type", "personal", "--sub-category", "single-project")
	require.NoError(t, err)
	assert.Contains(t, out, "Thanks!")

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, domain.NewRecord(domain.UserPersonal, domain.SubSingleProject, ""), last)
}

func TestClassifyCmd_FlagsOther(t *testing.T) {
	app, rec := testApp(t)
	out, err := executeCmd(t, app, "classify",
		"--user-type", "professional", "--sub-category", "other", "--other", "Home Stager")
	require.NoError(t, err)
	assert.Contains(t, out, "Home Stager")

	last, ok := rec.Last()
	require.True(t, ok)
	require.NotNil(t, last.OtherText)
	assert.Equal(t, "Home Stager", *last.OtherText)
}

func TestClassifyCmd_OtherTextIgnoredForRegularOption(t *testing.T) {
	app, rec := testApp(t)
	_, err := executeCmd(t, app, "classify",
		"--user-type", "professional", "--sub-category", "landscaping", "--other", "ignored")
	require.NoError(t, err)

	last, _ := rec.Last()
	assert.Nil(t, last.OtherText)
}

func TestClassifyCmd_BlankOtherRejected(t *testing.T) {
	app, rec := testApp(t)
	_, err := executeCmd(t, app, "classify",
		"--user-type", "professional", "--sub-category", "other", "--other", "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotSubmittable)
	assert.Empty(t, rec.Records())
}

func TestClassifyCmd_CrossTypeRejected(t *testing.T) {
	app, rec := testApp(t)
	_, err := executeCmd(t, app, "classify", "--user-type", "personal", "--sub-category", "architecture")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubCategoryNotAllowed)
	assert.Empty(t, rec.Records())
}

func TestClassifyCmd_UnknownUserType(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "classify", "--user-type", "robot", "--sub-category", "other")
	assert.ErrorIs(t, err, domain.ErrUnknownUserType)
}

// --- wiring ---

func quietApp() *App {
	return &App{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestWire_WebhookFromFlag(t *testing.T) {
	app := quietApp()
	_, err := executeCmd(t, app, "options", "--webhook-url", "http://127.0.0.1:1/hook")
	require.NoError(t, err)

	multi, ok := app.Sink.(sink.Multi)
	require.True(t, ok, "expected sink.Multi, got %T", app.Sink)
	assert.Len(t, multi, 2)
}

func TestWire_DryRunSkipsWebhook(t *testing.T) {
	app := quietApp()
	_, err := executeCmd(t, app, "options", "--webhook-url", "http://127.0.0.1:1/hook", "--dry-run")
	require.NoError(t, err)

	multi, ok := app.Sink.(sink.Multi)
	require.True(t, ok)
	assert.Len(t, multi, 1)
}

func TestWire_InvalidLogLevelFlag(t *testing.T) {
	app := &App{}
	_, err := executeCmd(t, app, "options", "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chatty")
}

func TestClassifyCmd_PostsToWebhook(t *testing.T) {
	var got sink.Envelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	app := quietApp()
	_, err := executeCmd(t, app, "classify",
		"--user-type", "professional", "--sub-category", "interior-design",
		"--webhook-url", srv.URL)
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, domain.SubInteriorDesign, got.Record.SubCategory)
}

func TestClassifyCmd_WebhookFailureIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	app := quietApp()
	_, err := executeCmd(t, app, "classify",
		"--user-type", "personal", "--sub-category", "ongoing-project",
		"--webhook-url", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
