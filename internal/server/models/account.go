// Package models holds the row types shared by repositories and services.
package models

import "time"

// Account is a stored identity record. PasswordHash is the opaque bcrypt
// output; the raw password is never persisted and never leaves the auth
// package.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountSummary is the public view of an account, safe to return to
// clients (no password hash).
type AccountSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Summary returns the public view of the account.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{ID: a.ID, Username: a.Username, Email: a.Email}
}
