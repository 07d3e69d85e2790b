package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

// Slot keeps the snapshot payload under a single Redis key named after the slot.
type Slot struct {
	client redis.Cmdable
	name   string
}

// NewSlot creates a Slot stored at key name.
func NewSlot(client redis.Cmdable, name string) *Slot {
	return &Slot{client: client, name: name}
}

func (s *Slot) Name() string { return s.name }

// Load returns domain.ErrSlotEmpty when the key does not exist.
func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	b, err := s.client.Get(ctx, s.name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.name, err)
	}
	return b, nil
}

func (s *Slot) Save(ctx context.Context, payload []byte) error {
	if err := s.client.Set(ctx, s.name, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.name, err)
	}
	return nil
}

func (s *Slot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ ports.Slot = (*Slot)(nil)
