package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so callers can swap implementations
type Client interface {
	redis.UniversalClient
}
