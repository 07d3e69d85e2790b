// Package metrics defines all custom Prometheus metrics of the Super Cash
// backoffice. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "supercash"

// ── Store metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events appended by the store.
// Label:
//   - type: contract_created, guide_emitted, payment_confirmed or status_changed
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events recorded, by event type.",
	},
	[]string{"type"},
)

// StoreRecords tracks the current size of each store collection.
// Label:
//   - collection: clients, contracts, payment_guides or audit_events
var StoreRecords = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_records",
		Help:      "Current number of records held in each store collection.",
	},
	[]string{"collection"},
)

// ── Persistence metrics ───────────────────────────────────────────────────────

// PersistenceFlushesTotal counts snapshot writes to the durable slot.
// Labels:
//   - backend: file, redis, mongo, dynamodb or postgres
//   - result: "ok" or "error"
var PersistenceFlushesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persistence_flushes_total",
		Help:      "Total number of snapshot flushes, by backend and result.",
	},
	[]string{"backend", "result"},
)

// PersistenceFlushDuration measures how long encoding and saving a snapshot takes.
var PersistenceFlushDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "persistence_flush_duration_seconds",
		Help:      "Duration of a snapshot flush, from encode to slot write.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"backend"},
)

// SnapshotBytes is the size of the last snapshot payload written.
var SnapshotBytes = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_bytes",
		Help:      "Size in bytes of the last persisted snapshot payload.",
	},
)

// SnapshotsCoalescedTotal counts snapshots replaced by a newer one before being written.
var SnapshotsCoalescedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_coalesced_total",
		Help:      "Total number of pending snapshots superseded before a flush.",
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PixCodesIssuedTotal counts PIX codes produced by a provider.
// Labels:
//   - provider: "local" or "mercadopago"
//   - result: "ok" or "error"
var PixCodesIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pix_codes_issued_total",
		Help:      "Total number of PIX codes requested, by provider and result.",
	},
	[]string{"provider", "result"},
)
