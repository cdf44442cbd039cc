package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	redisclient "github.com/jeondoksi/jeondoksi-cli/internal/redis"
)

// RedisConfig contains configuration for the Redis session repository
type RedisConfig struct {
	Client redisclient.Client
	// Prefix namespaces the key, e.g. "jeondoksi" stores "jeondoksi:session:access_token"
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
	key    string
	clock  clock.Clock
}

var _ Repository = (*redisRepository)(nil)

// NewRedis creates a Redis-backed session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	key := Key
	if cfg.Prefix != "" {
		key = cfg.Prefix + ":" + Key
	}

	return &redisRepository{client: cfg.Client, key: key, clock: clk}, nil
}

func (r *redisRepository) Get(ctx context.Context) (*Token, error) {
	result, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFound("no stored session")
		}
		return nil, errors.Wrap(err, "failed to get session")
	}

	return decodeToken(result, time.Time{})
}

func (r *redisRepository) Save(ctx context.Context, accessToken string) error {
	value, err := encodeToken(accessToken, r.clock.Now())
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	return nil
}

func (r *redisRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}
	return nil
}

func encodeToken(accessToken string, at time.Time) (string, error) {
	if accessToken == "" {
		return "", errors.InvalidArgument("access token cannot be empty")
	}

	raw, err := json.Marshal(tokenData{AccessToken: accessToken, SavedAt: at.UTC()})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal session")
	}
	return string(raw), nil
}

// decodeToken also accepts a bare token string written by older clients
func decodeToken(value string, fallbackAt time.Time) (*Token, error) {
	var data tokenData
	if err := json.Unmarshal([]byte(value), &data); err != nil || data.AccessToken == "" {
		if value == "" {
			return nil, errors.NotFound("no stored session")
		}
		return &Token{AccessToken: value, SavedAt: fallbackAt}, nil
	}
	return &Token{AccessToken: data.AccessToken, SavedAt: data.SavedAt}, nil
}
