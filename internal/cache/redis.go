// Package cache manages the optional Redis client used for rate limiting.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"coachblog/internal/middleware"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis initializes the Redis client from the given address or URL.
// An empty address leaves the client nil, which disables rate limiting.
func InitRedis(addr string) {
	if addr == "" {
		client = nil
		return
	}

	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			middleware.Logger.Warn("invalid REDIS_URL, continuing without rate limiting",
				slog.String("url", addr),
				slog.String("error", err.Error()),
			)
			client = nil
			return
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unreachable, rate limiting will fail open",
			slog.String("addr", opts.Addr),
			slog.String("error", err.Error()),
		)
	}
}

// GetClient returns the configured Redis client, or nil when Redis is not
// configured.
func GetClient() *redis.Client {
	return client
}
