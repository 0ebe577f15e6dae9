package ports

import (
	"context"

	"deliverytrack/internal/core/domain/model/kernel"
)

// AuthProvider resolves a delivery agent's identity from a bearer credential.
// Credential issuance and storage live outside this core; the provider only
// verifies and extracts the agent id.
type AuthProvider interface {
	Authenticate(ctx context.Context, credential string) (kernel.UUID, error)
}
