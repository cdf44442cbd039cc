package bosshp

import (
	"context"
	"strings"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	redisclient "github.com/jeondoksi/jeondoksi-cli/internal/redis"
)

const scanBatch = 100

// RedisConfig contains configuration for the Redis boss HP repository
type RedisConfig struct {
	Client redisclient.Client
	Prefix string
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	prefix string
	clock  clock.Clock
}

var _ Repository = (*redisRepository)(nil)

// NewRedis creates a Redis-backed boss HP repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	prefix := ""
	if cfg.Prefix != "" {
		prefix = cfg.Prefix + ":"
	}

	return &redisRepository{client: cfg.Client, prefix: prefix, clock: clk}, nil
}

func (r *redisRepository) buildKey(bossID int64) string {
	return r.prefix + Key(bossID)
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateBossID(input.BossID); err != nil {
		return nil, err
	}

	value, err := r.client.Get(ctx, r.buildKey(input.BossID)).Result()
	if err != nil {
		if err == redisclient.Nil {
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

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
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

	if err := r.client.Set(ctx, r.buildKey(input.BossID), value, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to put hp for boss %d", input.BossID)
	}

	return &PutOutput{Record: &Record{BossID: input.BossID, HP: input.HP, ObservedAt: now.UTC()}}, nil
}

func (r *redisRepository) scan(ctx context.Context) ([]rawEntry, error) {
	var entries []rawEntry

	iter := r.client.Scan(ctx, 0, r.prefix+KeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		value, err := r.client.Get(ctx, key).Result()
		if err == redisclient.Nil {
			continue
		}
		if err != nil {
			// non-string values land here
			value = ""
		}
		entries = append(entries, rawEntry{key: strings.TrimPrefix(key, r.prefix), value: value})
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan hp records")
	}
	return entries, nil
}

func (r *redisRepository) List(ctx context.Context) (*ListOutput, error) {
	entries, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(entries), nil
}

func (r *redisRepository) Prune(ctx context.Context, input *PruneInput) (*PruneOutput, error) {
	if input == nil {
		input = &PruneInput{}
	}

	listed, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &PruneOutput{Removed: listed.Corrupted}
	if input.DryRun || len(listed.Corrupted) == 0 {
		return out, nil
	}

	keys := make([]string, len(listed.Corrupted))
	for i, k := range listed.Corrupted {
		keys[i] = r.prefix + k
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete corrupted hp records")
	}
	return out, nil
}
