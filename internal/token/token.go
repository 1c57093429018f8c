// Package token signs and verifies the compact identity tokens clients
// present on authenticated requests. A token carries exactly the identity
// triple {id, username, email} plus an expiry; nothing else is encoded.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the decoded claim set attached to a request after
// verification. It lives only for the duration of the request.
type Identity struct {
	ID       uuid.UUID
	Username string
	Email    string
}

type claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 tokens. The signing secret and validity
// window are process-wide configuration injected at construction.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) Issue(identity Identity) (string, error) {
	now := time.Now()
	c := claims{
		Username: identity.Username,
		Email:    identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify decodes a token string back into an Identity. Any failure, from a
// malformed string to a bad signature or an expired token, collapses into
// ErrInvalidToken; callers treat that as "no identity", never as a fault.
func (s *Service) Verify(raw string) (*Identity, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		ID:       id,
		Username: c.Username,
		Email:    c.Email,
	}, nil
}
