// Package auth adapts bearer tokens to the authenticated principals the core
// consumes. Token mechanics stay here; services only ever see domain.Actor.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Tanmay000009/swe-fastfood/internal/domain"
)

var (
	ErrNoToken      = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")
)

// Principal is an authenticated caller.
type Principal struct {
	Role     domain.ActorKind
	ID       string
	UserName string
}

// Actor converts the principal into the tagged actor passed to order
// transitions.
func (p Principal) Actor() domain.Actor {
	return domain.Actor{Kind: p.Role, ID: p.ID}
}

type claims struct {
	Role     string `json:"role"`
	UserName string `json:"userName"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 bearer tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
}

const defaultTokenTTL = 24 * time.Hour

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		method: jwt.SigningMethodHS256,
	}
}

// Issue signs a token carrying the principal's role, id and user name.
func (t *Tokens) Issue(p Principal, now time.Time) (string, error) {
	token := jwt.NewWithClaims(t.method, claims{
		Role:     string(p.Role),
		UserName: p.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token into a principal.
func (t *Tokens) Verify(raw string) (Principal, error) {
	if raw == "" {
		return Principal{}, ErrNoToken
	}

	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(token *jwt.Token) (any, error) {
		if token.Method != t.method {
			return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	role := domain.ActorKind(c.Role)
	if role != domain.ActorCustomer && role != domain.ActorOwner {
		return Principal{}, ErrInvalidToken
	}
	if c.Subject == "" {
		return Principal{}, ErrInvalidToken
	}

	return Principal{
		Role:     role,
		ID:       c.Subject,
		UserName: c.UserName,
	}, nil
}
