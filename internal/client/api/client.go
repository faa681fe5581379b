// Package api is the single point of outbound HTTP communication with the
// style-assistant backend. It owns the in-memory bearer token, builds
// requests against one configured base origin, and maps response statuses
// onto the sentinel errors in errors.go. Every call is a single attempt:
// no retries, no backoff; cancellation and deadlines come from the caller's
// context.
package api

import (
	"context"

	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

// AuthResponse is the body of a successful login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client is the backend endpoint surface.
type Client interface {
	// SetToken stores the bearer token attached to subsequent requests.
	// The token is process-local and must be re-primed from the session
	// store on cold start.
	SetToken(token string)
	ClearToken()

	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Register(ctx context.Context, email, password string) error

	Profile(ctx context.Context, userID string) (*models.StyleProfile, error)
	CreateProfile(ctx context.Context, p *models.StyleProfile) error
	UpdateProfile(ctx context.Context, userID string, p *models.StyleProfile) error

	WardrobeItems(ctx context.Context, userID string) ([]models.WardrobeItem, error)
	AddWardrobeItem(ctx context.Context, item models.NewWardrobeItem) (*models.WardrobeItem, error)
	DeleteWardrobeItem(ctx context.Context, itemID string) error
	ToggleFavorite(ctx context.Context, itemID string) error

	SubmitDailyInput(ctx context.Context, input models.DailyInput) (*models.StylingSuggestion, error)
	Suggestions(ctx context.Context, userID string) ([]models.StylingSuggestion, error)
	SubmitFeedback(ctx context.Context, suggestionID string, fb models.Feedback) error
}
