// Package redis wraps the go-redis client so the inventory repository and the
// redis mixer depend on an interface instead of a concrete client.
package redis

import (
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes the connection pool. A nil *Options uses go-redis defaults.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	DB              int
	UseTLS          bool
}

// NewClient creates a client for a single instance. The address may be a
// plain host:port or a redis:// / rediss:// URL; values from the URL win over
// DB and UseTLS in opts. No connection is made until the first command.
func NewClient(address string, opts *Options) (Client, error) {
	if address == "" {
		return nil, errors.New("redis: address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{Addr: address, DB: opts.DB}
	if strings.Contains(address, "://") {
		parsed, err := redis.ParseURL(address)
		if err != nil {
			return nil, err
		}
		redisOpts = parsed
	} else if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
		}
	}

	redisOpts.MinIdleConns = opts.MinIdleConns
	redisOpts.PoolSize = opts.PoolSize
	redisOpts.ConnMaxIdleTime = opts.ConnMaxIdleTime
	redisOpts.MaxRetries = opts.MaxRetries

	return redis.NewClient(redisOpts), nil
}
