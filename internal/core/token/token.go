// Package token issues and validates the signed session tokens downstream
// services trust for authorization. Tokens are self-contained HS256 JWTs:
// validity is determined purely by signature and expiry, so any instance
// holding the same secret can validate tokens minted by any other instance.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/epfafrica/user-service/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims are the assertions embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

// Config carries the signing material and token lifetime. It is fixed at
// startup and injected at construction; key rotation is a known gap.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// Provider mints and validates session tokens.
type Provider struct {
	secret []byte
	ttl    time.Duration
}

func NewProvider(cfg Config) *Provider {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Provider{secret: []byte(cfg.Secret), ttl: ttl}
}

// Generate mints a fresh token asserting the user's identity and roles.
func (p *Provider) Generate(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
		UserID: user.ID,
		Roles:  user.Roles,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(p.secret)
}

// Validate checks signature and expiry and returns the decoded claims.
// Expired tokens yield domain.ErrTokenExpired; anything else that fails
// verification yields domain.ErrTokenInvalid.
func (p *Provider) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
