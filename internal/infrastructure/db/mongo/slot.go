package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

const slotCollection = "slots"

type slotDocument struct {
	Name      string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// collection is the part of *mongo.Collection the slot uses.
type collection interface {
	FindOne(ctx context.Context, filter any, opts ...*options.FindOneOptions) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter, replacement any, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
}

// Slot stores the snapshot payload as one document of the slots collection,
// keyed by slot name.
type Slot struct {
	col  collection
	ping func(context.Context) error
	name string
	now  func() time.Time
}

// NewSlot creates a Slot in db.
func NewSlot(db *mongo.Database, name string) *Slot {
	return newSlot(db.Collection(slotCollection), func(ctx context.Context) error {
		return db.Client().Ping(ctx, readpref.Primary())
	}, name)
}

func newSlot(col collection, ping func(context.Context) error, name string) *Slot {
	return &Slot{
		col:  col,
		ping: ping,
		name: name,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Slot) Name() string { return s.name }

// Load returns domain.ErrSlotEmpty when no document exists for the slot.
func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc slotDocument
	err := s.col.FindOne(ctx, bson.M{"_id": s.name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, fmt.Errorf("mongo load slot %s: %w", s.name, err)
	}
	return []byte(doc.Payload), nil
}

// Save replaces the slot document, creating it on first write.
func (s *Slot) Save(ctx context.Context, payload []byte) error {
	doc := slotDocument{Name: s.name, Payload: string(payload), UpdatedAt: s.now()}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": s.name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo save slot %s: %w", s.name, err)
	}
	return nil
}

func (s *Slot) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

var _ ports.Slot = (*Slot)(nil)
