package ports

import "context"

// Slot is a named durable location holding one serialized snapshot.
// Load returns domain.ErrSlotEmpty when nothing was saved yet.
type Slot interface {
	Name() string
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	Ping(ctx context.Context) error
}
