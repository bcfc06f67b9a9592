// Package auth issues and validates the HMAC-signed bearer tokens used for
// the operational endpoints.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dannykellett/ai-chat-bot/middleware"
)

// HMACValidator signs and validates JWT tokens with a shared secret
// (SECRET_KEY). It implements middleware.TokenValidator.
type HMACValidator struct {
	secret []byte
}

// NewHMACValidator creates a validator keyed on the given secret.
func NewHMACValidator(secret string) *HMACValidator {
	return &HMACValidator{secret: []byte(secret)}
}

// Sign mints a token for the given subject, valid for ttl.
func (v *HMACValidator) Sign(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// ValidateToken parses and verifies a token, returning the claims on success.
func (v *HMACValidator) ValidateToken(ctx context.Context, tokenStr string) (*middleware.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	rc, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	claims := &middleware.Claims{Sub: rc.Subject}
	if rc.ExpiresAt != nil {
		claims.Exp = rc.ExpiresAt.Unix()
	}
	if rc.IssuedAt != nil {
		claims.Iat = rc.IssuedAt.Unix()
	}
	return claims, nil
}
