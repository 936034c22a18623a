package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getPassword and getAmount are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getAmount     = GetAmount
)

// Register prompts for a username, email and password and creates the
// account. The returned session is kept, so the user is logged in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.api.Register(ctx, username, email, string(password))
	if err != nil {
		a.report(err)
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome, %s! Your account is ready.\n", user.Username)
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		a.report(err)
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", user.Username, user.Email, user.ID)
	return nil
}
