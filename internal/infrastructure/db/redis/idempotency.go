package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/supercash/backoffice/internal/core/ports"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers which guide an Idempotency-Key produced.
// Key format: idem:<slot>:<key>
type IdempotencyStore struct {
	client redis.Cmdable
	prefix string
}

// NewIdempotencyStore creates an IdempotencyStore scoped to one slot name.
func NewIdempotencyStore(client redis.Cmdable, slot string) *IdempotencyStore {
	return &IdempotencyStore{client: client, prefix: "idem:" + slot + ":"}
}

// Lookup returns the guide id recorded for key, if any.
func (d *IdempotencyStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	id, err := d.client.Get(ctx, d.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, true, nil
}

// Remember records guideID for key (expires after idempotencyTTL). The first
// writer wins.
func (d *IdempotencyStore) Remember(ctx context.Context, key, guideID string) error {
	return d.client.SetNX(ctx, d.prefix+key, guideID, idempotencyTTL).Err()
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)
