package service

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

// Store keeps all backoffice records in memory. Every mutation appends its audit
// event and notifies observers before the write lock is released, so observers
// see changes in mutation order.
type Store struct {
	mu        sync.RWMutex
	clients   []domain.Client
	contracts []domain.Contract
	guides    []domain.PaymentGuide
	events    []domain.AuditEvent
	auditIDs  map[string]struct{}

	observers []ports.ChangeObserver
	now       func() time.Time
	log       zerolog.Logger
}

// NewStore seeds a store from a previously persisted snapshot.
func NewStore(initial domain.Snapshot, log zerolog.Logger, observers ...ports.ChangeObserver) *Store {
	seed := initial.Clone()
	s := &Store{
		clients:   seed.Clients,
		contracts: seed.Contracts,
		guides:    seed.PaymentGuides,
		events:    seed.AuditEvents,
		auditIDs:  make(map[string]struct{}, len(seed.AuditEvents)),
		observers: observers,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log.With().Str("component", "store").Logger(),
	}
	for _, e := range seed.AuditEvents {
		s.auditIDs[e.ID] = struct{}{}
	}
	return s
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// AddClient appends a client. No audit event is recorded.
func (s *Store) AddClient(client domain.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = append(s.clients, client)
	s.notify(nil)
	s.log.Info().Str("client_id", client.ID).Msg("client added")
}

// AddContract appends a contract and records contract_created.
func (s *Store) AddContract(contract domain.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contracts = append(s.contracts, contract)
	desc, meta := contractCreatedEvent(contract)
	ev := s.addAuditEvent(contract.ID, domain.AuditContractCreated, desc, meta)
	s.notify(&ev)
	s.log.Info().Str("contract_id", contract.ID).Str("client_id", contract.ClientID).Msg("contract added")
}

// AddPaymentGuide appends a guide and records guide_emitted.
func (s *Store) AddPaymentGuide(guide domain.PaymentGuide) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guides = append(s.guides, guide)
	desc, meta := guideEmittedEvent(guide)
	ev := s.addAuditEvent(guide.ContractID, domain.AuditGuideEmitted, desc, meta)
	s.notify(&ev)
	s.log.Info().Str("guide_id", guide.ID).Str("contract_id", guide.ContractID).Msg("payment guide added")
}

// ConfirmPayment moves a pending guide to confirmed and records payment_confirmed.
// A miss or an already confirmed guide leaves the store untouched.
func (s *Store) ConfirmPayment(guideID string) (domain.PaymentGuide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.guides, func(g domain.PaymentGuide) bool { return g.ID == guideID })
	if i < 0 {
		return domain.PaymentGuide{}, fmt.Errorf("confirm payment %s: %w", guideID, domain.ErrGuideNotFound)
	}

	confirmed, err := s.guides[i].Confirmed(s.now())
	if err != nil {
		return s.guides[i], fmt.Errorf("confirm payment %s: %w", guideID, err)
	}
	s.guides[i] = confirmed

	desc, meta := paymentConfirmedEvent(confirmed)
	ev := s.addAuditEvent(confirmed.ContractID, domain.AuditPaymentConfirmed, desc, meta)
	s.notify(&ev)
	s.log.Info().Str("guide_id", guideID).Str("value", confirmed.Value.StringFixed(2)).Msg("payment confirmed")
	return confirmed, nil
}

// UpdateContractStatus replaces a contract status and records status_changed.
func (s *Store) UpdateContractStatus(contractID string, status domain.ContractStatus) (domain.Contract, error) {
	if !status.Valid() {
		return domain.Contract{}, fmt.Errorf("update contract %s: %w %q", contractID, domain.ErrInvalidContractStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.contracts, func(c domain.Contract) bool { return c.ID == contractID })
	if i < 0 {
		return domain.Contract{}, fmt.Errorf("update contract %s: %w", contractID, domain.ErrContractNotFound)
	}

	previous := s.contracts[i].Status
	s.contracts[i].Status = status

	desc, meta := statusChangedEvent(previous, status)
	ev := s.addAuditEvent(contractID, domain.AuditStatusChanged, desc, meta)
	s.notify(&ev)
	s.log.Info().
		Str("contract_id", contractID).
		Str("from", string(previous)).
		Str("to", string(status)).
		Msg("contract status changed")
	return s.contracts[i], nil
}

// addAuditEvent assigns id and timestamp and appends. Callers hold the write lock.
func (s *Store) addAuditEvent(contractID string, typ domain.AuditEventType, desc string, meta domain.AuditMetadata) domain.AuditEvent {
	now := s.now()
	id := newAuditID(now)
	for {
		if _, taken := s.auditIDs[id]; !taken {
			break
		}
		id = newAuditID(now)
	}
	s.auditIDs[id] = struct{}{}

	ev := domain.AuditEvent{
		ID:          id,
		ContractID:  contractID,
		Type:        typ,
		Description: desc,
		Metadata:    meta,
		CreatedAt:   now,
	}
	s.events = append(s.events, ev)
	return ev
}

// notify hands the post-mutation state to every observer. Callers hold the write lock.
func (s *Store) notify(ev *domain.AuditEvent) {
	if len(s.observers) == 0 {
		return
	}
	change := domain.Change{Snapshot: s.snapshotLocked(), Event: ev}
	for _, o := range s.observers {
		o.OnChange(change)
	}
}

func (s *Store) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Clients:       s.clients,
		Contracts:     s.contracts,
		PaymentGuides: s.guides,
		AuditEvents:   s.events,
	}.Clone()
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Stats recomputes the dashboard figures.
func (s *Store) Stats() domain.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ComputeStats(domain.Snapshot{Contracts: s.contracts, PaymentGuides: s.guides})
}

func (s *Store) ClientByID(id string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.clients, func(c domain.Client) bool { return c.ID == id })
}

// ClientByCPF matches on digits only, so punctuation does not matter.
func (s *Store) ClientByCPF(cpf string) (domain.Client, bool) {
	digits := domain.CPFDigits(cpf)
	if digits == "" {
		return domain.Client{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.clients, func(c domain.Client) bool { return domain.CPFDigits(c.CPF) == digits })
}

func (s *Store) ContractByID(id string) (domain.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.contracts, func(c domain.Contract) bool { return c.ID == id })
}

func (s *Store) GuideByID(id string) (domain.PaymentGuide, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(s.guides, func(g domain.PaymentGuide) bool { return g.ID == id })
}

// GuidesByContractID returns the guides of a contract in creation order.
func (s *Store) GuidesByContractID(contractID string) []domain.PaymentGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.guides, func(g domain.PaymentGuide) bool { return g.ContractID == contractID })
}

// AuditEventsByContractID returns the events of a contract in creation order.
func (s *Store) AuditEventsByContractID(contractID string) []domain.AuditEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.events, func(e domain.AuditEvent) bool { return e.ContractID == contractID })
}

// ListClients returns clients whose name or CPF contains search, in creation order.
func (s *Store) ListClients(search string) []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.clients, func(c domain.Client) bool { return c.Matches(search) })
}

// ListContracts returns matching contracts, newest first.
func (s *Store) ListContracts(f ports.ListContractsFilter) []domain.Contract {
	s.mu.RLock()
	out := filter(s.contracts, func(c domain.Contract) bool {
		return (f.Status == "" || c.Status == f.Status) && c.Matches(f.Search)
	})
	s.mu.RUnlock()

	newestFirst(out, func(c domain.Contract) time.Time { return c.CreatedAt })
	return out
}

// ListGuides returns matching guides, newest first.
func (s *Store) ListGuides(f ports.ListGuidesFilter) []domain.PaymentGuide {
	s.mu.RLock()
	out := filter(s.guides, func(g domain.PaymentGuide) bool {
		return (f.Status == "" || g.Status == f.Status) && (f.ContractID == "" || g.ContractID == f.ContractID)
	})
	s.mu.RUnlock()

	newestFirst(out, func(g domain.PaymentGuide) time.Time { return g.CreatedAt })
	return out
}

// RecentGuides returns at most n guides, newest first.
func (s *Store) RecentGuides(n int) []domain.PaymentGuide {
	out := s.ListGuides(ports.ListGuidesFilter{})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// GuideTotals sums pending and confirmed guide values.
func (s *Store) GuideTotals() domain.GuideTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SumGuides(s.guides)
}

// ContractDetail assembles the full view of one contract as of now.
func (s *Store) ContractDetail(contractID string, now time.Time) (*ports.ContractDetail, error) {
	s.mu.RLock()
	contract, ok := find(s.contracts, func(c domain.Contract) bool { return c.ID == contractID })
	if !ok {
		s.mu.RUnlock()
		return nil, fmt.Errorf("contract detail %s: %w", contractID, domain.ErrContractNotFound)
	}
	guides := filter(s.guides, func(g domain.PaymentGuide) bool { return g.ContractID == contractID })
	events := filter(s.events, func(e domain.AuditEvent) bool { return e.ContractID == contractID })
	var client *domain.Client
	if c, found := find(s.clients, func(c domain.Client) bool { return c.ID == contract.ClientID }); found {
		client = &c
	}
	s.mu.RUnlock()

	totals := domain.SumGuides(guides)
	detail := &ports.ContractDetail{
		Contract:     contract,
		Client:       client,
		TotalPaid:    totals.Confirmed,
		TotalPending: totals.Pending,
		Schedule:     domain.BuildSchedule(contract, guides, now),
	}

	newestFirst(guides, func(g domain.PaymentGuide) time.Time { return g.CreatedAt })
	newestFirst(events, func(e domain.AuditEvent) time.Time { return e.CreatedAt })
	detail.Guides = guides
	detail.AuditEvents = events
	return detail, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, it := range items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// filter always returns a non-nil slice.
func filter[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0)
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// newestFirst sorts in place by descending timestamp. Ties keep the later
// insertion first.
func newestFirst[T any](items []T, at func(T) time.Time) {
	slices.Reverse(items)
	slices.SortStableFunc(items, func(a, b T) int { return at(b).Compare(at(a)) })
}

var _ ports.Store = (*Store)(nil)
