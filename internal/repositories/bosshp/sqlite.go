package bosshp

import (
	"context"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	"github.com/jeondoksi/jeondoksi-cli/internal/sqlite"
)

// SQLiteConfig contains configuration for the sqlite boss HP repository
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

// NewSQLite creates a sqlite-backed boss HP repository
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

func (r *sqliteRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateBossID(input.BossID); err != nil {
		return nil, err
	}

	value, err := r.db.Get(ctx, Key(input.BossID))
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("no hp recorded for boss %d", input.BossID)
		}
		return nil, errors.Wrapf(err, "failed to get hp for boss %d", input.BossID)
	}

	rec, err := decodeRecord(input.BossID, value)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: rec}, nil
}

func (r *sqliteRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateBossID(input.BossID); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	value, err := encodeRecord(input.HP, now)
	if err != nil {
		return nil, err
	}

	if err := r.db.Set(ctx, Key(input.BossID), value, now); err != nil {
		return nil, errors.Wrapf(err, "failed to put hp for boss %d", input.BossID)
	}

	return &PutOutput{Record: &Record{BossID: input.BossID, HP: input.HP, ObservedAt: now.UTC()}}, nil
}

func (r *sqliteRepository) List(ctx context.Context) (*ListOutput, error) {
	rows, err := r.db.List(ctx, KeyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hp records")
	}

	entries := make([]rawEntry, len(rows))
	for i, row := range rows {
		entries[i] = rawEntry{key: row.Key, value: row.Value}
	}
	return decodeAll(entries), nil
}

func (r *sqliteRepository) Prune(ctx context.Context, input *PruneInput) (*PruneOutput, error) {
	if input == nil {
		input = &PruneInput{}
	}

	listed, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &PruneOutput{Removed: listed.Corrupted}
	if input.DryRun {
		return out, nil
	}

	for _, key := range listed.Corrupted {
		if err := r.db.Delete(ctx, key); err != nil {
			return nil, errors.Wrapf(err, "failed to delete %s", key)
		}
	}
	return out, nil
}
