// Package redisconn opens the redis client used by the rate limiter.
package redisconn

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// New connects and pings so a bad address fails at startup, not on the
// first throttled request.
func New(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
