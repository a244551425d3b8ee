package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Account created successfully",
			"user":    map[string]any{"id": 1, "username": "alice", "email": "alice@x.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	account, err := c.Register(context.Background(), "alice", "alice@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, "alice", account.Username)
}

func TestRegister_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Username already exists"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Register(context.Background(), "alice", "alice@x.com", "pw123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Username already exists")
}

func TestLogin_ReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Login successful",
			"token":   "tok-123",
			"user":    map[string]any{"id": 1, "username": "alice", "email": "alice@x.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	account, token, err := c.Login(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "alice", account.Username)
}

func TestSelf_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "username": "alice", "email": "alice@x.com"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	account, err := c.Self(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", account.Email)
}

func TestSelf_ErrorWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Self(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
