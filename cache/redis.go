// Package cache manages the optional redis client backing the rate limiter.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var Client *redis.Client

// InitRedis connects to redis at addr. The service runs fine without redis;
// a failed connection only disables rate limiting.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("Redis unavailable; continuing without rate limiting")
		Client = nil
	} else {
		log.Info("Redis connected successfully")
	}
}

func Close() {
	if Client != nil {
		if err := Client.Close(); err != nil {
			log.WithError(err).Error("Error closing Redis")
		}
	}
}
