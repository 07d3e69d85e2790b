package domain

import "slices"

// Snapshot is the full state of the store at one point in time.
type Snapshot struct {
	Clients       []Client       `json:"clients"`
	Contracts     []Contract     `json:"contracts"`
	PaymentGuides []PaymentGuide `json:"paymentGuides"`
	AuditEvents   []AuditEvent   `json:"auditEvents"`
}

// Clone returns a copy whose slices do not alias s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Clients:       slices.Clone(s.Clients),
		Contracts:     slices.Clone(s.Contracts),
		PaymentGuides: slices.Clone(s.PaymentGuides),
		AuditEvents:   slices.Clone(s.AuditEvents),
	}
	return out.Normalize()
}

// Normalize replaces missing collections with empty ones.
func (s Snapshot) Normalize() Snapshot {
	if s.Clients == nil {
		s.Clients = []Client{}
	}
	if s.Contracts == nil {
		s.Contracts = []Contract{}
	}
	if s.PaymentGuides == nil {
		s.PaymentGuides = []PaymentGuide{}
	}
	if s.AuditEvents == nil {
		s.AuditEvents = []AuditEvent{}
	}
	return s
}

// Empty reports whether the snapshot holds no records at all.
func (s Snapshot) Empty() bool {
	return len(s.Clients) == 0 && len(s.Contracts) == 0 &&
		len(s.PaymentGuides) == 0 && len(s.AuditEvents) == 0
}

// Change is emitted after every store mutation.
// Event is nil for mutations that do not produce an audit event.
type Change struct {
	Snapshot Snapshot
	Event    *AuditEvent
}
