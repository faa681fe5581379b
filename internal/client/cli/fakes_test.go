package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/styleoracle/internal/client/config"
	"github.com/dmitrijs2005/styleoracle/internal/client/models"
	"github.com/dmitrijs2005/styleoracle/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (l nopLogger) With(args ...any) logging.Logger                  { return l }

type fakeAuth struct {
	restoreUser  *models.User
	restoreOK    bool
	restoreErr   error
	restoreCalls int

	loginUser  *models.User
	loginErr   error
	loginEmail string

	registerErr error
	registered  []string

	logoutErr   error
	logoutCalls int
}

func (f *fakeAuth) Restore(_ context.Context) (*models.User, bool, error) {
	f.restoreCalls++
	return f.restoreUser, f.restoreOK, f.restoreErr
}

func (f *fakeAuth) Login(_ context.Context, email string, _ []byte) (*models.User, error) {
	f.loginEmail = email
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, email string, _ []byte) error {
	f.registered = append(f.registered, email)
	return f.registerErr
}

func (f *fakeAuth) Logout(_ context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

type fakeWardrobe struct {
	items     []models.WardrobeItem
	listErr   error
	listCalls int
	listDelay time.Duration

	added  []models.NewWardrobeItem
	addErr error

	deleted   []string
	deleteErr error

	toggled   []string
	toggleErr error
}

func (f *fakeWardrobe) List(_ context.Context, _ string) ([]models.WardrobeItem, error) {
	f.listCalls++
	if f.listDelay > 0 {
		time.Sleep(f.listDelay)
	}
	return f.items, f.listErr
}

func (f *fakeWardrobe) Add(_ context.Context, item models.NewWardrobeItem) error {
	f.added = append(f.added, item)
	return f.addErr
}

func (f *fakeWardrobe) Delete(_ context.Context, itemID string) error {
	f.deleted = append(f.deleted, itemID)
	return f.deleteErr
}

func (f *fakeWardrobe) ToggleFavorite(_ context.Context, itemID string) error {
	f.toggled = append(f.toggled, itemID)
	return f.toggleErr
}

type fakeStyling struct {
	suggestions []models.StylingSuggestion
	listErr     error
	listCalls   int
	listDelay   time.Duration

	requested  []models.DailyInput
	suggestion *models.StylingSuggestion
	requestErr error

	feedbackIDs []string
	feedback    []models.Feedback
	feedbackErr error
}

func (f *fakeStyling) List(_ context.Context, _ string) ([]models.StylingSuggestion, error) {
	f.listCalls++
	if f.listDelay > 0 {
		time.Sleep(f.listDelay)
	}
	return f.suggestions, f.listErr
}

func (f *fakeStyling) RequestSuggestion(_ context.Context, input models.DailyInput) (*models.StylingSuggestion, error) {
	f.requested = append(f.requested, input)
	return f.suggestion, f.requestErr
}

func (f *fakeStyling) SubmitFeedback(_ context.Context, suggestionID string, fb models.Feedback) error {
	f.feedbackIDs = append(f.feedbackIDs, suggestionID)
	f.feedback = append(f.feedback, fb)
	return f.feedbackErr
}

type fakeProfile struct {
	profile *models.StyleProfile
	getErr  error

	saved       *models.StyleProfile
	savedExists bool
	saveErr     error
}

func (f *fakeProfile) Get(_ context.Context, _ string) (*models.StyleProfile, error) {
	return f.profile, f.getErr
}

func (f *fakeProfile) Save(_ context.Context, p *models.StyleProfile, exists bool) error {
	f.saved = p
	f.savedExists = exists
	return f.saveErr
}

type testDeps struct {
	auth     *fakeAuth
	wardrobe *fakeWardrobe
	styling  *fakeStyling
	profile  *fakeProfile
	out      *bytes.Buffer
}

func newTestApp(_ *testing.T) (*App, *testDeps) {
	deps := &testDeps{
		auth:     &fakeAuth{},
		wardrobe: &fakeWardrobe{},
		styling:  &fakeStyling{},
		profile:  &fakeProfile{},
		out:      &bytes.Buffer{},
	}
	app := &App{
		config:   &config.Config{RequestTimeout: 5 * time.Second},
		logger:   nopLogger{},
		auth:     deps.auth,
		wardrobe: deps.wardrobe,
		styling:  deps.styling,
		profile:  deps.profile,
		state:    StateUndetermined,
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      deps.out,
	}
	return app, deps
}

func asAuthenticated(app *App, user *models.User) {
	app.state = StateAuthenticated
	app.user = user
}

// stubInputs scripts the interactive prompts. Each prompt pops the next
// answer; an empty answer on a defaulted prompt keeps the current value.
func stubInputs(t *testing.T, answers ...string) {
	t.Helper()

	origSimple := getSimpleText
	origDefault := getTextDefault
	origPassword := getPassword
	origMultiline := getMultiline
	t.Cleanup(func() {
		getSimpleText = origSimple
		getTextDefault = origDefault
		getPassword = origPassword
		getMultiline = origMultiline
	})

	queue := answers
	next := func() string {
		if len(queue) == 0 {
			t.Fatal("prompt requested but no scripted answer left")
		}
		answer := queue[0]
		queue = queue[1:]
		return answer
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return next(), nil
	}
	getTextDefault = func(_ *bufio.Reader, _ string, current string, _ io.Writer) (string, error) {
		if answer := next(); answer != "" {
			return answer, nil
		}
		return current, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte(next()), nil
	}
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return next(), nil
	}
}
