package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuideStatus represents the state of a payment guide.
type GuideStatus string

const (
	GuidePending   GuideStatus = "pending"
	GuideConfirmed GuideStatus = "confirmed"
)

// validGuideTransitions defines the allowed guide state machine transitions.
var validGuideTransitions = map[GuideStatus][]GuideStatus{
	GuidePending: {GuideConfirmed},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s GuideStatus) CanTransitionTo(next GuideStatus) bool {
	for _, allowed := range validGuideTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label returns the pt-BR display name of the status.
func (s GuideStatus) Label() string {
	switch s {
	case GuidePending:
		return "Pendente"
	case GuideConfirmed:
		return "Confirmado"
	default:
		return string(s)
	}
}

// PaymentGuide is a PIX payment request tied to one contract.
type PaymentGuide struct {
	ID          string          `json:"id"`
	ContractID  string          `json:"contractId"`
	ClientID    string          `json:"clientId"`
	ClientName  string          `json:"clientName"`
	ClientCPF   string          `json:"clientCpf"`
	Value       decimal.Decimal `json:"value"`
	PixCode     string          `json:"pixCode"`
	Status      GuideStatus     `json:"status"`
	ConfirmedAt *time.Time      `json:"confirmedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Confirmed returns a copy of g moved to the confirmed state at ts.
// The receiver is left untouched.
func (g PaymentGuide) Confirmed(ts time.Time) (PaymentGuide, error) {
	if !g.Status.CanTransitionTo(GuideConfirmed) {
		if g.Status == GuideConfirmed {
			return g, ErrGuideAlreadyConfirmed
		}
		return g, ErrInvalidTransition
	}
	out := g
	out.Status = GuideConfirmed
	at := ts
	out.ConfirmedAt = &at
	return out, nil
}
