package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
	"github.com/supercash/backoffice/internal/metrics"
)

const defaultFlushTimeout = 5 * time.Second

// Flusher writes store snapshots to a slot in the background. It holds at most
// one pending snapshot; a newer change replaces an unwritten older one.
type Flusher struct {
	slot    ports.Slot
	backend string
	pending chan domain.Snapshot
	done    chan struct{}
	timeout time.Duration
	log     zerolog.Logger
}

// NewFlusher creates a Flusher for slot. backend labels metrics ("file", "redis", ...).
func NewFlusher(slot ports.Slot, backend string, log zerolog.Logger) *Flusher {
	return &Flusher{
		slot:    slot,
		backend: backend,
		pending: make(chan domain.Snapshot, 1),
		done:    make(chan struct{}),
		timeout: defaultFlushTimeout,
		log:     log.With().Str("component", "flusher").Str("slot", slot.Name()).Logger(),
	}
}

// OnChange implements ports.ChangeObserver. It never blocks.
func (f *Flusher) OnChange(c domain.Change) {
	for {
		select {
		case f.pending <- c.Snapshot:
			return
		default:
		}
		select {
		case <-f.pending:
			metrics.SnapshotsCoalescedTotal.Inc()
		default:
		}
	}
}

// Start launches the writer goroutine. When ctx is cancelled the write in
// progress and the last pending snapshot are completed before Done is closed.
func (f *Flusher) Start(ctx context.Context) {
	go f.run(ctx)
}

// Done is closed once the writer goroutine has exited.
func (f *Flusher) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the writer exits or ctx expires.
func (f *Flusher) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("flusher wait: %w", ctx.Err())
	}
}

func (f *Flusher) run(ctx context.Context) {
	defer close(f.done)
	// ctx only stops the loop. Writes run detached from it, each bounded by
	// f.timeout, so a snapshot picked up around cancellation still lands.
	writeCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			f.drain(writeCtx)
			return
		case snap := <-f.pending:
			f.flushLogged(writeCtx, snap)
		}
	}
}

func (f *Flusher) drain(ctx context.Context) {
	select {
	case snap := <-f.pending:
		f.flushLogged(ctx, snap)
	default:
	}
}

func (f *Flusher) flushLogged(ctx context.Context, snap domain.Snapshot) {
	if err := f.Flush(ctx, snap); err != nil {
		f.log.Error().Err(err).Msg("snapshot flush failed")
	}
}

// Flush encodes and writes one snapshot synchronously.
func (f *Flusher) Flush(ctx context.Context, snap domain.Snapshot) error {
	start := time.Now()
	defer func() {
		metrics.PersistenceFlushDuration.WithLabelValues(f.backend).Observe(time.Since(start).Seconds())
	}()

	payload, err := Encode(snap)
	if err != nil {
		metrics.PersistenceFlushesTotal.WithLabelValues(f.backend, "error").Inc()
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	if err := f.slot.Save(ctx, payload); err != nil {
		metrics.PersistenceFlushesTotal.WithLabelValues(f.backend, "error").Inc()
		return fmt.Errorf("save slot %s: %w", f.slot.Name(), err)
	}

	metrics.PersistenceFlushesTotal.WithLabelValues(f.backend, "ok").Inc()
	metrics.SnapshotBytes.Set(float64(len(payload)))
	f.log.Debug().Int("bytes", len(payload)).Int("audit_events", len(snap.AuditEvents)).Msg("snapshot flushed")
	return nil
}
