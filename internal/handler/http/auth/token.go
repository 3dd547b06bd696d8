// Package auth guards the note write endpoints with HS256 bearer tokens.
// When no secret is configured the middleware is a no-op.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleWriter may create, update and delete notes.
const RoleWriter = "writer"

// MinSecretLength is the shortest HS256 secret accepted at startup.
const MinSecretLength = 32

// Claims are the JWT claims issued and accepted by the API.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for subject valid for ttl.
func IssueToken(secret []byte, subject, role string, ttl time.Duration, now time.Time) (string, error) {
	if err := ValidateSecret(secret); err != nil {
		return "", err
	}
	if subject == "" {
		return "", errors.New("subject must not be empty")
	}
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateSecret rejects secrets too short for HS256.
func ValidateSecret(secret []byte) error {
	if len(secret) < MinSecretLength {
		return fmt.Errorf("JWT secret must be at least %d bytes (got %d)", MinSecretLength, len(secret))
	}
	return nil
}

// ParseToken verifies signature, algorithm and expiry and returns the claims.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("invalid sub claim")
	}
	return &claims, nil
}
