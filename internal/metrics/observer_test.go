package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/supercash/backoffice/internal/core/domain"
)

func TestStoreObserver_CountsEvents(t *testing.T) {
	before := testutil.ToFloat64(AuditEventsTotal.WithLabelValues(string(domain.AuditGuideEmitted)))

	StoreObserver{}.OnChange(domain.Change{
		Snapshot: domain.Snapshot{PaymentGuides: make([]domain.PaymentGuide, 3)},
		Event:    &domain.AuditEvent{Type: domain.AuditGuideEmitted},
	})

	after := testutil.ToFloat64(AuditEventsTotal.WithLabelValues(string(domain.AuditGuideEmitted)))
	if after != before+1 {
		t.Errorf("expected counter to grow by one, got %v -> %v", before, after)
	}
	if got := testutil.ToFloat64(StoreRecords.WithLabelValues("payment_guides")); got != 3 {
		t.Errorf("expected 3 payment guides, got %v", got)
	}
}
