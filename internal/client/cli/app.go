// Package cli implements the interactive command-line client for the
// identity server.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userauth/internal/client/api"
	"github.com/dmitrijs2005/userauth/internal/client/config"
)

// apiClient is the subset of the HTTP client the commands need; a fake
// implementation is injected in tests.
type apiClient interface {
	Register(ctx context.Context, username, email, password string) (*api.Account, error)
	Login(ctx context.Context, username, password string) (*api.Account, string, error)
	Self(ctx context.Context, token string) (*api.Account, error)
}

type App struct {
	config *config.Config
	api    apiClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.New(c.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run dispatches a single subcommand: register, login, or whoami.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	switch args[0] {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "whoami":
		token := ""
		if len(args) > 1 {
			token = args[1]
		}
		return a.Whoami(ctx, token)
	default:
		a.usage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: cli [register|login|whoami <token>]")
	fmt.Fprintln(a.out, "The whoami token may also be supplied via USERAUTH_TOKEN.")
}
