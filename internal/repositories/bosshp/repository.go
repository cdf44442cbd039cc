// Package bosshp persists the last boss HP seen by this client. The value is
// only a diffing baseline for the damage effect and never authoritative.
package bosshp

//go:generate mockgen -destination=mock/mock_repository.go -package=bosshpmock github.com/jeondoksi/jeondoksi-cli/internal/repositories/bosshp Repository

import (
	"context"
	"time"
)

// KeyPrefix starts every stored key; the boss id follows
const KeyPrefix = "boss_last_hp:"

// Record is one stored observation
type Record struct {
	BossID     int64
	HP         int64
	ObservedAt time.Time // zero for values written by older clients
}

// Repository defines the interface for last-seen HP persistence
type Repository interface {
	// Get returns the last HP stored for a boss
	// Returns errors.NotFound on first visit
	// Returns errors.Internal for undecodable values
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put overwrites the stored HP
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// List returns every stored record, ordered by boss id, and the keys
	// whose values could not be decoded
	List(ctx context.Context) (*ListOutput, error)

	// Prune removes undecodable entries
	Prune(ctx context.Context, input *PruneInput) (*PruneOutput, error)
}

// GetInput defines the input for Get
type GetInput struct {
	BossID int64
}

// GetOutput defines the output for Get
type GetOutput struct {
	Record *Record
}

// PutInput defines the input for Put
type PutInput struct {
	BossID int64
	HP     int64
}

// PutOutput defines the output for Put
type PutOutput struct {
	Record *Record
}

// ListOutput defines the output for List
type ListOutput struct {
	Records   []*Record
	Corrupted []string
}

// PruneInput defines the input for Prune
type PruneInput struct {
	// DryRun reports what would be removed without removing it
	DryRun bool
}

// PruneOutput defines the output for Prune
type PruneOutput struct {
	Removed []string
}
