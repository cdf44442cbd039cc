package session

import (
	"context"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	"github.com/jeondoksi/jeondoksi-cli/internal/sqlite"
)

// SQLiteConfig contains configuration for the sqlite session repository
type SQLiteConfig struct {
	DB    *sqlite.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

type sqliteRepository struct {
	db    *sqlite.DB
	clock clock.Clock
}

var _ Repository = (*sqliteRepository)(nil)

// NewSQLite creates a sqlite-backed session repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &sqliteRepository{db: cfg.DB, clock: clk}, nil
}

func (r *sqliteRepository) Get(ctx context.Context) (*Token, error) {
	value, err := r.db.Get(ctx, Key)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("no stored session")
		}
		return nil, errors.Wrap(err, "failed to get session")
	}

	return decodeToken(value, r.clock.Now())
}

func (r *sqliteRepository) Save(ctx context.Context, accessToken string) error {
	now := r.clock.Now()
	value, err := encodeToken(accessToken, now)
	if err != nil {
		return err
	}

	if err := r.db.Set(ctx, Key, value, now); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	return nil
}

func (r *sqliteRepository) Clear(ctx context.Context) error {
	if err := r.db.Delete(ctx, Key); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}
	return nil
}
