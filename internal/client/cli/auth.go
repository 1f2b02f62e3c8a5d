package cli

import (
	"context"
	"errors"
	"fmt"
)

// Prompt seams, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getEmail      = GetEmail
	getPassword   = GetPassword
)

var errAuthFailed = errors.New("authentication failed")

// Signup prompts for name, email and password and creates an account.
// When the backend does not open a session right away the user is told to
// log in once the account is confirmed.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getEmail(a.reader, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if !a.store.Signup(ctx, name, email, password) {
		return a.reportError()
	}

	if a.store.State().IsAuthenticated {
		fmt.Fprintln(a.out, "Account created, you are logged in.")
	} else {
		fmt.Fprintln(a.out, "Account created. Log in once it is confirmed.")
	}
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getEmail(a.reader, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if !a.store.Login(ctx, email, password) {
		return a.reportError()
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", displayName(a.store.State().User))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	st := a.store.State()
	if st.User == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> id=%s\n", st.User.Name, st.User.Email, st.User.ID)
	if exp := st.Session.ExpiresAt(); !exp.IsZero() {
		fmt.Fprintf(a.out, "session expires %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// reportError prints the store's error once and clears it.
func (a *App) reportError() error {
	msg := a.store.State().Error
	if msg == "" {
		msg = errAuthFailed.Error()
	}
	fmt.Fprintln(a.out, "Error:", msg)
	a.store.ClearError()
	return fmt.Errorf("%w: %s", errAuthFailed, msg)
}
