package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

// DBTX is the subset of *pgxpool.Pool used by Slot.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

const (
	loadSlotSQL = `SELECT payload FROM snapshot_slots WHERE name = $1`
	saveSlotSQL = `INSERT INTO snapshot_slots (name, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
)

// Slot stores the snapshot payload as one row of snapshot_slots.
type Slot struct {
	db   DBTX
	name string
}

// NewSlot creates a Slot for row name.
func NewSlot(db DBTX, name string) *Slot {
	return &Slot{db: db, name: name}
}

func (s *Slot) Name() string { return s.name }

// Load returns domain.ErrSlotEmpty when the row does not exist.
func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, loadSlotSQL, s.name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("postgres load slot %s: %w", s.name, err)
	}
	return payload, nil
}

func (s *Slot) Save(ctx context.Context, payload []byte) error {
	if _, err := s.db.Exec(ctx, saveSlotSQL, s.name, payload); err != nil {
		return fmt.Errorf("postgres save slot %s: %w", s.name, err)
	}
	return nil
}

func (s *Slot) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

var _ ports.Slot = (*Slot)(nil)
