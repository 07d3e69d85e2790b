package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/supercash/backoffice/internal/core/domain"
)

type stubRow struct {
	payload []byte
	err     error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

type stubDB struct {
	rows map[string][]byte
}

func (d *stubDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	p, ok := d.rows[args[0].(string)]
	if !ok {
		return stubRow{err: pgx.ErrNoRows}
	}
	return stubRow{payload: p}
}

func (d *stubDB) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	d.rows[args[0].(string)] = args[1].([]byte)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (d *stubDB) Ping(context.Context) error { return nil }

func TestSlot_SaveLoad(t *testing.T) {
	db := &stubDB{rows: map[string][]byte{}}
	slot := NewSlot(db, "supercash-storage")
	ctx := context.Background()

	if _, err := slot.Load(ctx); !errors.Is(err, domain.ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}
	if err := slot.Save(ctx, []byte("payload")); err != nil {
		t.Fatal(err)
	}
	got, err := slot.Load(ctx)
	if err != nil || string(got) != "payload" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	if err != nil || len(entries) == 0 {
		t.Fatalf("no embedded migrations: %v", err)
	}
}
