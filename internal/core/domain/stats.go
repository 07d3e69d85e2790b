package domain

import "github.com/shopspring/decimal"

// DashboardStats are the headline figures of the backoffice dashboard.
type DashboardStats struct {
	TotalCollected       decimal.Decimal `json:"totalArrecadado"`
	GuidesIssued         int             `json:"guiasEmitidas"`
	ActiveContracts      int             `json:"contratosAtivos"`
	PendingConfirmations int             `json:"pendenciasConfirmacao"`
}

// ComputeStats derives dashboard figures from a snapshot.
func ComputeStats(s Snapshot) DashboardStats {
	stats := DashboardStats{
		TotalCollected: decimal.Zero,
		GuidesIssued:   len(s.PaymentGuides),
	}
	for _, g := range s.PaymentGuides {
		switch g.Status {
		case GuideConfirmed:
			stats.TotalCollected = stats.TotalCollected.Add(g.Value)
		case GuidePending:
			stats.PendingConfirmations++
		}
	}
	for _, c := range s.Contracts {
		if c.Status == ContractActive {
			stats.ActiveContracts++
		}
	}
	return stats
}

// GuideTotals sums guide values by status.
type GuideTotals struct {
	Pending   decimal.Decimal `json:"pending"`
	Confirmed decimal.Decimal `json:"confirmed"`
}

// SumGuides totals pending and confirmed guide values.
func SumGuides(guides []PaymentGuide) GuideTotals {
	t := GuideTotals{Pending: decimal.Zero, Confirmed: decimal.Zero}
	for _, g := range guides {
		switch g.Status {
		case GuidePending:
			t.Pending = t.Pending.Add(g.Value)
		case GuideConfirmed:
			t.Confirmed = t.Confirmed.Add(g.Value)
		}
	}
	return t
}
