// Package api is a thin HTTP client for the identity server. It mirrors
// the server's JSON surface and turns error payloads into Go errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Account is the public account view returned by the server.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// decodeError extracts the server's error message from a non-2xx response.
func decodeError(resp *http.Response) error {
	var e errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("server: %s", e.Error)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type registerResponse struct {
	Message string  `json:"message"`
	User    Account `json:"user"`
}

type loginResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    Account `json:"user"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Account, error) {
	var resp registerResponse
	err := c.postJSON(ctx, "/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates and returns the account together with a session
// token.
func (c *Client) Login(ctx context.Context, username, password string) (*Account, string, error) {
	var resp loginResponse
	err := c.postJSON(ctx, "/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

// Self fetches the account behind the given session token.
func (c *Client) Self(ctx context.Context, token string) (*Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, decodeError(resp)
	}

	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}
