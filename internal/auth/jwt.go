// Package auth verifies the bearer tokens that carry the caller's credential
// id. Token issuance happens in a separate authentication service; this
// package only parses and validates what that service signed.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload. UserID is the credential id the handlers use
// for ownership checks.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 access tokens against a shared secret.
type Verifier struct {
	Secret []byte
}

// Parse validates tokenStr and returns its claims. Tokens signed with any
// algorithm other than HS256 are rejected.
func (v *Verifier) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg %q", token.Method.Alg())
		}
		return v.Secret, nil
	}, jwt.WithLeeway(60*time.Second))
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid && c.UserID != "" {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// Issue signs an access token for userID. The deployed issuer lives in the
// external auth service; this is used by local tooling and tests.
func (v *Verifier) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.Secret)
}
