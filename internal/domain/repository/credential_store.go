// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"billdesk/internal/errors"
)

// Well-known credential keys. No other keys are recognized.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// ErrCredentialNotFound is returned when a requested key has no stored value.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialStore is durable key/value persistence for the token pair.
// All operations are synchronous and survive process restarts. Values are
// opaque pass-through; no validation of token content happens here.
//
// Storage-layer failures (unwritable path, corrupt file) are reported wrapped
// in domainerrors.ErrStorageUnavailable; callers treat that condition the same
// as "no value present" rather than failing.
type CredentialStore interface {
	// Get returns the stored value for key, or ErrCredentialNotFound.
	Get(key string) (string, error)

	// Set stores value under key.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error

	// SetPair stores the access and refresh tokens in a single synchronous
	// step; no observer can see one written without the other.
	SetPair(accessToken, refreshToken string) error

	// ClearPair removes both tokens in a single synchronous step.
	ClearPair() error
}
