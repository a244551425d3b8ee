package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userauth/internal/client/api"
	"github.com/dmitrijs2005/userauth/internal/client/config"
)

type fakeAPI struct {
	registerOut *api.Account
	registerErr error

	loginOut   *api.Account
	loginToken string
	loginErr   error

	selfOut  *api.Account
	selfErr  error
	gotToken string
}

func (f *fakeAPI) Register(ctx context.Context, username, email, password string) (*api.Account, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*api.Account, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.loginOut, f.loginToken, nil
}

func (f *fakeAPI) Self(ctx context.Context, token string) (*api.Account, error) {
	f.gotToken = token
	if f.selfErr != nil {
		return nil, f.selfErr
	}
	return f.selfOut, nil
}

func newTestApp(t *testing.T, f *fakeAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config: cfg,
		api:    f,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(pw), nil
	}
}

func TestRegisterCommand_Success(t *testing.T) {
	stubPassword(t, "pw123")

	f := &fakeAPI{registerOut: &api.Account{ID: 1, Username: "alice", Email: "alice@x.com"}}
	app, out := newTestApp(t, f, "alice\nalice@x.com\n")

	if err := app.Run(context.Background(), []string{"register"}); err != nil {
		t.Fatalf("register error: %v", err)
	}
	if !strings.Contains(out.String(), "Account created: alice (id=1)") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestLoginCommand_PrintsToken(t *testing.T) {
	stubPassword(t, "pw123")

	f := &fakeAPI{loginOut: &api.Account{ID: 1, Username: "alice"}, loginToken: "tok-123"}
	app, out := newTestApp(t, f, "alice\n")

	if err := app.Run(context.Background(), []string{"login"}); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if !strings.Contains(out.String(), "USERAUTH_TOKEN=tok-123") {
		t.Fatalf("token not printed: %q", out.String())
	}
}

func TestLoginCommand_PropagatesError(t *testing.T) {
	stubPassword(t, "wrong")

	f := &fakeAPI{loginErr: errors.New("server: Invalid password")}
	app, _ := newTestApp(t, f, "alice\n")

	err := app.Run(context.Background(), []string{"login"})
	if err == nil || !strings.Contains(err.Error(), "Invalid password") {
		t.Fatalf("expected login error, got %v", err)
	}
}

func TestWhoamiCommand_TokenArgument(t *testing.T) {
	f := &fakeAPI{selfOut: &api.Account{ID: 1, Username: "alice", Email: "alice@x.com"}}
	app, out := newTestApp(t, f, "")

	if err := app.Run(context.Background(), []string{"whoami", "tok-123"}); err != nil {
		t.Fatalf("whoami error: %v", err)
	}
	if f.gotToken != "tok-123" {
		t.Fatalf("token not passed: %q", f.gotToken)
	}
	if !strings.Contains(out.String(), "username=alice") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestWhoamiCommand_TokenFromEnv(t *testing.T) {
	t.Setenv("USERAUTH_TOKEN", "env-token")

	f := &fakeAPI{selfOut: &api.Account{ID: 1, Username: "alice"}}
	app, _ := newTestApp(t, f, "")

	if err := app.Run(context.Background(), []string{"whoami"}); err != nil {
		t.Fatalf("whoami error: %v", err)
	}
	if f.gotToken != "env-token" {
		t.Fatalf("token not taken from env: %q", f.gotToken)
	}
}

func TestWhoamiCommand_NoToken(t *testing.T) {
	t.Setenv("USERAUTH_TOKEN", "")

	app, _ := newTestApp(t, &fakeAPI{}, "")

	err := app.Run(context.Background(), []string{"whoami"})
	if err == nil || !strings.Contains(err.Error(), "no token") {
		t.Fatalf("expected no-token error, got %v", err)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(t, &fakeAPI{}, "")

	err := app.Run(context.Background(), []string{"frobnicate"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
