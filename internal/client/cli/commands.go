package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email, and password and creates a new
// account. The password byte slice is wiped before returning.
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
	defer common.WipeByteArray(password)

	account, err := a.api.Register(ctx, username, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created: %s (id=%d)\n", account.Username, account.ID)
	return nil
}

// Login prompts for credentials, authenticates, and prints the session
// token so it can be exported for later whoami calls.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, token, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", account.Username)
	fmt.Fprintf(a.out, "export USERAUTH_TOKEN=%s\n", token)
	return nil
}

// Whoami resolves the given session token (or USERAUTH_TOKEN when empty)
// to the account it authenticates.
func (a *App) Whoami(ctx context.Context, token string) error {
	if token == "" {
		token = os.Getenv("USERAUTH_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("no token: pass one as an argument or set USERAUTH_TOKEN")
	}

	account, err := a.api.Self(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id=%d username=%s email=%s\n", account.ID, account.Username, account.Email)
	return nil
}
