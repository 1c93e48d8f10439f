// Package service declares the domain-level service contracts implemented by
// the infrastructure layer.
package service

import (
	"context"

	"billdesk/internal/domain/entity"
)

// RegisterInput carries everything the backend needs to provision a new
// tenant and its first user. The tenant slug is forwarded verbatim; slug
// derivation is a presentation concern and happens before this layer.
type RegisterInput struct {
	TenantName string
	TenantSlug string
	Email      string
	Password   string
	FirstName  string
	LastName   string
}

// SessionGateway wraps the backend operations the session lifecycle depends
// on. Each call is a single round trip; failures map onto the domain error
// taxonomy (ErrInvalidCredentials, ErrRegistrationRejected,
// ErrUnauthenticated, ErrGatewayUnavailable).
type SessionGateway interface {
	// Authenticate exchanges credentials for a token pair.
	Authenticate(ctx context.Context, email, password string) (*entity.TokenPair, error)

	// Register provisions a tenant plus initial user and returns its token pair.
	Register(ctx context.Context, input *RegisterInput) (*entity.TokenPair, error)

	// FetchIdentity returns the principal the backend associates with the
	// access token the transport attaches implicitly.
	FetchIdentity(ctx context.Context) (*entity.Identity, error)

	// ClearLocalSession removes both tokens from the credential store.
	// Pure local side effect; never fails.
	ClearLocalSession()
}
