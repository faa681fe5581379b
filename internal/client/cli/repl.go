package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the set of screens the REPL can dispatch to. The App
// satisfies it; tests substitute a recording fake.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Wardrobe(ctx context.Context) error
	AddItem(ctx context.Context) error
	DeleteItem(ctx context.Context) error
	ToggleFavorite(ctx context.Context) error
	Refresh(ctx context.Context) error

	StyleMe(ctx context.Context) error
	Suggestions(ctx context.Context) error
	Feedback(ctx context.Context) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

// authCommands are only usable after a successful login.
var authCommands = map[string]struct{}{
	"dashboard":   {},
	"wardrobe":    {},
	"additem":     {},
	"delitem":     {},
	"fav":         {},
	"refresh":     {},
	"styleme":     {},
	"suggestions": {},
	"feedback":    {},
	"profile":     {},
	"editprofile": {},
	"logout":      {},
}

const guestHelp = "Available commands: register, login, help, exit"
const userHelp = "Available commands: dashboard, wardrobe, additem, delitem, fav, refresh, " +
	"styleme, suggestions, feedback, profile, editprofile, logout, help, exit"

// runREPL reads commands line by line and dispatches them to the screens.
// Commands that need a session are rejected until the user logs in.
// Screen errors are already reported by the screens themselves, so the
// loop just moves on to the next command.
func runREPL(ctx context.Context, app execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "styleoracle [%s]> ", statusFn())
		if !scanner.Scan() {
			return
		}

		cmd := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			if app.isLoggedIn() {
				fmt.Fprintln(out, userHelp)
			} else {
				fmt.Fprintln(out, guestHelp)
			}
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		case "register":
			_ = app.Register(ctx)
		case "login":
			_ = app.Login(ctx)
		default:
			if _, ok := authCommands[cmd]; !ok {
				fmt.Fprintf(out, "Unknown command: %s. Type 'help' for the list of commands.\n", cmd)
				continue
			}
			if !app.isLoggedIn() {
				fmt.Fprintln(out, "Please 'login' first, or 'register' a new account.")
				continue
			}
			dispatch(ctx, app, cmd)
		}
	}
}

func dispatch(ctx context.Context, app execIface, cmd string) {
	switch cmd {
	case "dashboard":
		_ = app.Dashboard(ctx)
	case "wardrobe":
		_ = app.Wardrobe(ctx)
	case "additem":
		_ = app.AddItem(ctx)
	case "delitem":
		_ = app.DeleteItem(ctx)
	case "fav":
		_ = app.ToggleFavorite(ctx)
	case "refresh":
		_ = app.Refresh(ctx)
	case "styleme":
		_ = app.StyleMe(ctx)
	case "suggestions":
		_ = app.Suggestions(ctx)
	case "feedback":
		_ = app.Feedback(ctx)
	case "profile":
		_ = app.Profile(ctx)
	case "editprofile":
		_ = app.EditProfile(ctx)
	case "logout":
		_ = app.Logout(ctx)
	}
}
