// Package cli implements the interactive command line client. The App owns
// the session store, the API client and the per-screen caches, and decides
// once at startup whether the user is already authenticated.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/styleoracle/internal/client/api"
	"github.com/dmitrijs2005/styleoracle/internal/client/config"
	"github.com/dmitrijs2005/styleoracle/internal/client/models"
	"github.com/dmitrijs2005/styleoracle/internal/client/repositories/kv"
	"github.com/dmitrijs2005/styleoracle/internal/client/services"
	"github.com/dmitrijs2005/styleoracle/internal/client/session"
	"github.com/dmitrijs2005/styleoracle/internal/logging"
)

// State is the authentication state of the running app. It is resolved
// exactly once at startup and afterwards only changes through the login
// and logout screens.
type State string

const (
	StateUndetermined    State = "undetermined"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// App wires the services together and runs the read-eval-print loop.
// All collaborators are injected through the constructor.
type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	auth     services.AuthService
	wardrobe services.WardrobeService
	styling  services.StylingService
	profile  services.ProfileService

	state State
	user  *models.User

	// Screen caches. A cache is only replaced after a successful fetch,
	// so a failed refresh keeps showing the last known data.
	items             []models.WardrobeItem
	itemsLoaded       bool
	suggestions       []models.StylingSuggestion
	suggestionsLoaded bool

	// Suggestion ids whose feedback was already accepted this session.
	feedbackSent map[string]struct{}

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local session database and builds the full service stack
// on top of a single HTTP API client.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := kv.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error opening session database: %w", err)
	}

	store := session.NewStore(db)
	client := api.NewHTTPClient(cfg.APIBaseURL, &http.Client{})

	app := &App{
		config:   cfg,
		logger:   logger,
		db:       db,
		auth:     services.NewAuthService(client, store),
		wardrobe: services.NewWardrobeService(client),
		styling:  services.NewStylingService(client),
		profile:  services.NewProfileService(client),
		state:    StateUndetermined,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	return app, nil
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Resolve determines the initial authentication state from the persisted
// session. Any storage error is treated as "not logged in" so the app
// always reaches a usable state.
func (a *App) Resolve(ctx context.Context) {
	ctx, cancel := a.screenContext(ctx)
	defer cancel()

	user, ok, err := a.auth.Restore(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
		a.state = StateUnauthenticated
		return
	}
	// A token without a stored identity is a broken session; the screens
	// cannot work without a user id, so treat it as not logged in.
	if !ok || user == nil {
		a.state = StateUnauthenticated
		return
	}
	a.user = user
	a.state = StateAuthenticated
}

// Run resolves the session once and enters the REPL. It returns when the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	a.Resolve(ctx)

	fmt.Fprintln(a.out, "Welcome to StyleOracle! Type 'help' for the list of commands.")
	if a.state == StateAuthenticated && a.user != nil {
		fmt.Fprintf(a.out, "Logged in as %s.\n", a.user.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.state == StateAuthenticated
}

func (a *App) status() string {
	if a.isLoggedIn() && a.user != nil {
		return a.user.Email
	}
	return "guest"
}

// screenContext derives a context for a single screen interaction. Leaving
// the screen cancels any request still in flight.
func (a *App) screenContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) requireUser() (*models.User, error) {
	if a.user == nil {
		return nil, errors.New("no active user session")
	}
	return a.user, nil
}

func (a *App) resetCaches() {
	a.items = nil
	a.itemsLoaded = false
	a.suggestions = nil
	a.suggestionsLoaded = false
	a.feedbackSent = nil
}

// reportError logs the failure and prints a message matched to its class,
// so that auth, validation and connectivity problems read differently.
func (a *App) reportError(ctx context.Context, action string, err error) {
	a.logger.Error(ctx, "operation failed", "action", action, "error", err)

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintf(a.out, "%s failed: your session is no longer valid, please 'login' again.\n", action)
	case errors.Is(err, api.ErrValidation),
		errors.Is(err, models.ErrFieldRequired),
		errors.Is(err, models.ErrInvalidRating),
		errors.Is(err, models.ErrUnknownSeason):
		fmt.Fprintf(a.out, "%s rejected: %v\n", action, err)
	case errors.Is(err, api.ErrNotFound):
		fmt.Fprintf(a.out, "%s failed: not found.\n", action)
	case errors.Is(err, api.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(a.out, "%s failed: the server is unreachable, please try again later.\n", action)
	default:
		fmt.Fprintf(a.out, "%s failed: %v\n", action, err)
	}
}
