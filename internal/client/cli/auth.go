package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/styleoracle/internal/common"
)

// Register creates a new account. It does not log the user in, matching
// the server flow where registration and login are separate calls.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	if err := a.auth.Register(reqCtx, email, password); err != nil {
		a.reportError(ctx, "Registration", err)
		return err
	}

	fmt.Fprintln(a.out, "Account created! You can now 'login'.")
	return nil
}

// Login authenticates against the server, persists the session and switches
// the app into the authenticated state.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	user, err := a.auth.Login(reqCtx, email, password)
	if err != nil {
		a.reportError(ctx, "Login", err)
		return err
	}

	a.user = user
	a.state = StateAuthenticated
	a.resetCaches()

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Email)
	return nil
}

// Logout clears the persisted session and returns to the guest state.
func (a *App) Logout(ctx context.Context) error {
	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	if err := a.auth.Logout(reqCtx); err != nil {
		a.reportError(ctx, "Logout", err)
		return err
	}

	a.user = nil
	a.state = StateUnauthenticated
	a.resetCaches()

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
