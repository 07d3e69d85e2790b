// Package redis keeps the snapshot slot and the Idempotency-Key index in Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout = 5 * time.Second
	clientName     = "supercash-backoffice"
	// One writer goroutine plus the HTTP handlers of a single operator.
	poolSize = 4
)

// Config holds the connection settings of the slot instance.
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration // dial, read, write and the startup ping
}

// Connect opens a client and pings it once. The caller owns the client.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   clientName,
		PoolSize:     poolSize,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s ping: %w", cfg.Addr, err)
	}

	return client, nil
}
