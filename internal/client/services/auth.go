// Package services contains application services for the styleoracle client.
// This file defines the authentication service: login, registration, logout
// and restoring a persisted session on cold start.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/styleoracle/internal/client/api"
	"github.com/dmitrijs2005/styleoracle/internal/client/models"
	"github.com/dmitrijs2005/styleoracle/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Restore: prime the API client from the persisted session; reports
//     whether a token was held at the time of the check.
//   - Login: authenticate, persist token+identity, prime the API client.
//   - Register: create a new account on the server.
//   - Logout: wipe the persisted session and the in-memory token.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Restore(ctx context.Context) (*models.User, bool, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Register(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

// Restore reads the persisted session. When a token is present it is set on
// the API client and the stored identity is returned with ok=true. A missing
// token or a failed lookup reports ok=false; the error, when non-nil, is for
// logging only and still means "not authenticated".
func (a *authService) Restore(ctx context.Context) (*models.User, bool, error) {
	token, err := a.store.Token(ctx)
	if err != nil {
		return nil, false, err
	}
	if token == "" {
		return nil, false, nil
	}

	user, err := a.store.User(ctx)
	if err != nil {
		return nil, false, err
	}

	a.client.SetToken(token)
	return user, true, nil
}

// Login authenticates against the server, persists the session atomically,
// and only then primes the API client with the new token.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	resp, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.store.SetSession(ctx, resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.client.SetToken(resp.Token)
	user := resp.User
	return &user, nil
}

func (a *authService) Register(ctx context.Context, email string, password []byte) error {
	if err := a.client.Register(ctx, email, string(password)); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// Logout wipes the persisted session and removes the in-memory token.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.client.ClearToken()
	return nil
}
