// Package session persists the access token between command invocations
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/jeondoksi/jeondoksi-cli/internal/repositories/session Repository

import (
	"context"
	"time"
)

// Key is the storage key of the access token
const Key = "session:access_token"

// Token is the stored access token
type Token struct {
	AccessToken string
	SavedAt     time.Time
}

// Repository defines the interface for access token persistence
type Repository interface {
	// Get returns the stored token
	// Returns errors.NotFound when no one is logged in
	Get(ctx context.Context) (*Token, error)

	// Save replaces the stored token
	// Returns errors.InvalidArgument for an empty token
	Save(ctx context.Context, accessToken string) error

	// Clear removes the stored token. Clearing an empty session is not an error.
	Clear(ctx context.Context) error
}

type tokenData struct {
	AccessToken string    `json:"accessToken"`
	SavedAt     time.Time `json:"savedAt"`
}
