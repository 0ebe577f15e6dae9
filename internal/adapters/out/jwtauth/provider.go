// Package jwtauth resolves delivery agent identities from HS256-signed JWT
// bearer tokens. The subject claim carries the agent's UUID.
package jwtauth

import (
	"context"
	"fmt"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Provider verifies JWT credentials against a shared HMAC secret.
type Provider struct {
	secret []byte
}

// NewProvider creates a provider with the given signing secret.
func NewProvider(secret []byte) (*Provider, error) {
	if len(secret) == 0 {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &Provider{secret: secret}, nil
}

// Authenticate verifies the token signature and expiry, then parses the
// subject claim as the agent's UUID. Any verification failure comes back as
// an invalid-value error on the credential.
func (p *Provider) Authenticate(_ context.Context, credential string) (kernel.UUID, error) {
	if credential == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("credential")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("credential", err)
	}

	agentID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("credential", err)
	}

	return agentID, nil
}
