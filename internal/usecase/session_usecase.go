// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"billdesk/internal/domain/entity"
)

// LoginInput carries the credentials submitted by the login form.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginOutput is returned on a successful login.
type LoginOutput struct {
	Identity *entity.Identity
}

// RegisterInput carries the registration form fields. TenantSlug is passed
// through to the backend exactly as supplied.
type RegisterInput struct {
	TenantName string `validate:"required"`
	TenantSlug string `validate:"required"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=8"`
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
}

// RegisterOutput is returned on a successful registration.
type RegisterOutput struct {
	Identity *entity.Identity
}

// SessionUsecase owns the client-side session lifecycle: the one-time
// bootstrap, login/register/logout transitions, and the current snapshot the
// view layer renders from. A single instance is constructed at application
// start and lives for the process lifetime.
type SessionUsecase interface {
	// Bootstrap performs the one-time startup determination from persisted
	// tokens. Calling it again after it has completed is a no-op.
	Bootstrap(ctx context.Context) error

	// Login authenticates, persists the returned token pair, then fetches
	// and caches the identity. Safe under concurrent invocation; a duplicate
	// concurrent call observes the in-flight call's result.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Register provisions a tenant and signs its first user in, following
	// the same token-persist-then-identity-fetch sequence as Login.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Logout clears tokens and identity synchronously. It never fails and
	// never touches the network.
	Logout()

	// Snapshot returns the current observable session state.
	Snapshot() entity.SessionState
}
