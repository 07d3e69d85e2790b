package metrics

import (
	"github.com/supercash/backoffice/internal/core/domain"
)

// StoreObserver mirrors store changes into Prometheus.
type StoreObserver struct{}

// OnChange implements ports.ChangeObserver.
func (StoreObserver) OnChange(c domain.Change) {
	if c.Event != nil {
		AuditEventsTotal.WithLabelValues(string(c.Event.Type)).Inc()
	}
	StoreRecords.WithLabelValues("clients").Set(float64(len(c.Snapshot.Clients)))
	StoreRecords.WithLabelValues("contracts").Set(float64(len(c.Snapshot.Contracts)))
	StoreRecords.WithLabelValues("payment_guides").Set(float64(len(c.Snapshot.PaymentGuides)))
	StoreRecords.WithLabelValues("audit_events").Set(float64(len(c.Snapshot.AuditEvents)))
}
