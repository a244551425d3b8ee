// Package auth implements the two trust boundaries of the service:
// bcrypt password hashing and HS256 session tokens.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claims set carried by a session token. Subject is the
// username the token authenticates.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken builds a signed HS256 token for subject, valid for
// validityDuration from now. Two calls with identical inputs produce
// different strings; callers must not assume determinism.
func IssueToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString against secretKey and returns the
// subject claim. Outcomes are three-way: a subject on success,
// common.ErrTokenExpired for a well-formed token past its lifetime, and
// common.ErrInvalidToken for anything malformed, tampered, or signed with
// a different key.
func ParseToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
