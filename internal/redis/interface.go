package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can take either a real
// client or a miniredis-backed one
type Client interface {
	redis.UniversalClient
}

// Nil is returned by the client when a key does not exist
var Nil = redis.Nil
