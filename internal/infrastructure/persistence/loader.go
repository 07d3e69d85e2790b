package persistence

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

// Load reads the slot and returns the stored snapshot. A missing, unreadable or
// corrupt slot yields an empty snapshot; the cause is logged, never returned.
func Load(ctx context.Context, slot ports.Slot, log zerolog.Logger) domain.Snapshot {
	empty := domain.Snapshot{}.Normalize()

	payload, err := slot.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrSlotEmpty):
		log.Info().Str("slot", slot.Name()).Msg("no stored snapshot, starting empty")
		return empty
	case err != nil:
		log.Error().Err(err).Str("slot", slot.Name()).Msg("failed to read slot, starting empty")
		return empty
	}

	s, err := Decode(payload)
	if err != nil {
		log.Error().Err(err).Str("slot", slot.Name()).Int("bytes", len(payload)).Msg("discarding stored snapshot, starting empty")
		return empty
	}

	log.Info().
		Str("slot", slot.Name()).
		Int("clients", len(s.Clients)).
		Int("contracts", len(s.Contracts)).
		Int("payment_guides", len(s.PaymentGuides)).
		Int("audit_events", len(s.AuditEvents)).
		Msg("snapshot loaded")
	return s
}
