package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/supercash/backoffice/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs and fixtures
// ---------------------------------------------------------------------------

type memSlot struct {
	mu      sync.Mutex
	payload []byte
	saves   int
	loadErr error
	saveErr error
	saved   chan struct{}

	// When gate is set, Save signals entered and holds until gate is closed.
	gate    chan struct{}
	entered chan struct{}
}

func newMemSlot() *memSlot {
	return &memSlot{saved: make(chan struct{}, 16), entered: make(chan struct{}, 16)}
}

func (s *memSlot) Name() string { return "mem" }

func (s *memSlot) Load(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.payload == nil {
		return nil, domain.ErrSlotEmpty
	}
	return s.payload, nil
}

// Save fails on a cancelled context the way the network-backed slots do.
func (s *memSlot) Save(ctx context.Context, p []byte) error {
	if s.gate != nil {
		s.entered <- struct{}{}
		select {
		case <-s.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.payload = append([]byte(nil), p...)
	s.saves++
	select {
	case s.saved <- struct{}{}:
	default:
	}
	return nil
}

func (s *memSlot) Ping(context.Context) error { return nil }

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func fixtureSnapshot() domain.Snapshot {
	loc := time.FixedZone("BRT", -3*3600)
	created := time.Date(2026, 2, 3, 14, 15, 16, 789000000, loc)
	confirmed := created.Add(48 * time.Hour)
	return domain.Snapshot{
		Clients: []domain.Client{
			{ID: "CLI-1", Name: "Maria Souza", CPF: "529.982.247-25", Email: "maria@example.com", CreatedAt: created},
		},
		Contracts: []domain.Contract{
			domain.NewContract(domain.NewContractInput{
				ID: "CTR-1", ClientID: "CLI-1", ClientName: "Maria Souza",
				LoanValue: dec("1000"), Installments: 2, InterestRate: dec("10"),
				PixCode: "SUPERCASH1", CreatedAt: created,
			}),
		},
		PaymentGuides: []domain.PaymentGuide{
			{ID: "GUI-1", ContractID: "CTR-1", ClientID: "CLI-1", ClientName: "Maria Souza", ClientCPF: "529.982.247-25",
				Value: dec("550"), PixCode: "SUPERCASH1", Status: domain.GuideConfirmed, ConfirmedAt: &confirmed, CreatedAt: created},
			{ID: "GUI-2", ContractID: "CTR-1", ClientID: "CLI-1", ClientName: "Maria Souza", ClientCPF: "529.982.247-25",
				Value: dec("550"), PixCode: "SUPERCASH2", Status: domain.GuidePending, CreatedAt: created},
		},
		AuditEvents: []domain.AuditEvent{
			{ID: "AUD-1-aaaa", ContractID: "CTR-1", Type: domain.AuditContractCreated, Description: "Contrato criado para Maria Souza",
				Metadata: domain.AuditMetadata{ContractCreated: &domain.ContractCreatedMetadata{
					LoanValue: dec("1000"), Installments: 2, InterestRate: dec("10"), TotalValue: dec("1100")}},
				CreatedAt: created},
			{ID: "AUD-2-bbbb", ContractID: "CTR-1", Type: domain.AuditPaymentConfirmed, Description: "Pagamento confirmado - R$ 550,00",
				Metadata:  domain.AuditMetadata{PaymentConfirmed: &domain.PaymentConfirmedMetadata{GuideID: "GUI-1", Value: dec("550")}},
				CreatedAt: confirmed},
		},
	}
}

// assertSnapshotEqual compares decimals by value and timestamps by instant.
func assertSnapshotEqual(t *testing.T, want, got domain.Snapshot) {
	t.Helper()
	if len(got.Clients) != len(want.Clients) || len(got.Contracts) != len(want.Contracts) ||
		len(got.PaymentGuides) != len(want.PaymentGuides) || len(got.AuditEvents) != len(want.AuditEvents) {
		t.Fatalf("collection sizes differ: want %d/%d/%d/%d got %d/%d/%d/%d",
			len(want.Clients), len(want.Contracts), len(want.PaymentGuides), len(want.AuditEvents),
			len(got.Clients), len(got.Contracts), len(got.PaymentGuides), len(got.AuditEvents))
	}
	for i, w := range want.Clients {
		g := got.Clients[i]
		if g.ID != w.ID || g.Name != w.Name || g.CPF != w.CPF || g.Email != w.Email || g.Phone != w.Phone || !g.CreatedAt.Equal(w.CreatedAt) {
			t.Errorf("client %d: want %+v got %+v", i, w, g)
		}
	}
	for i, w := range want.Contracts {
		g := got.Contracts[i]
		if g.ID != w.ID || g.ClientID != w.ClientID || g.ClientName != w.ClientName || g.Installments != w.Installments ||
			!g.LoanValue.Equal(w.LoanValue) || !g.InterestRate.Equal(w.InterestRate) || !g.TotalValue.Equal(w.TotalValue) ||
			g.PixCode != w.PixCode || g.Status != w.Status || !g.CreatedAt.Equal(w.CreatedAt) {
			t.Errorf("contract %d: want %+v got %+v", i, w, g)
		}
	}
	for i, w := range want.PaymentGuides {
		g := got.PaymentGuides[i]
		if g.ID != w.ID || g.ContractID != w.ContractID || !g.Value.Equal(w.Value) || g.Status != w.Status ||
			g.PixCode != w.PixCode || g.ClientCPF != w.ClientCPF || !g.CreatedAt.Equal(w.CreatedAt) {
			t.Errorf("guide %d: want %+v got %+v", i, w, g)
		}
		if (w.ConfirmedAt == nil) != (g.ConfirmedAt == nil) ||
			(w.ConfirmedAt != nil && !g.ConfirmedAt.Equal(*w.ConfirmedAt)) {
			t.Errorf("guide %d confirmedAt: want %v got %v", i, w.ConfirmedAt, g.ConfirmedAt)
		}
	}
	for i, w := range want.AuditEvents {
		g := got.AuditEvents[i]
		if g.ID != w.ID || g.ContractID != w.ContractID || g.Type != w.Type || g.Description != w.Description ||
			!g.CreatedAt.Equal(w.CreatedAt) || g.Metadata.Type() != w.Metadata.Type() {
			t.Errorf("event %d: want %+v got %+v", i, w, g)
		}
	}
	if m := got.AuditEvents[0].Metadata.ContractCreated; m == nil || !m.TotalValue.Equal(dec("1100")) || m.Installments != 2 {
		t.Errorf("contract_created metadata lost: %+v", m)
	}
}

// ---------------------------------------------------------------------------
// Codec
// ---------------------------------------------------------------------------

func TestEncodeDecode_RoundTrip(t *testing.T) {
	want := fixtureSnapshot()

	payload, err := Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	assertSnapshotEqual(t, want, got)
}

func TestEncode_TimestampsAreRFC3339Strings(t *testing.T) {
	payload, err := Encode(fixtureSnapshot())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(payload), `"createdAt":"2026-02-03T14:15:16.789-03:00"`) {
		t.Errorf("timestamp not serialized as RFC 3339: %s", payload)
	}
}

func TestDecode_ChecksumMismatch(t *testing.T) {
	payload, err := Encode(fixtureSnapshot())
	if err != nil {
		t.Fatal(err)
	}
	tampered := strings.Replace(string(payload), "Maria Souza", "Mario Souza", 1)

	_, err = Decode([]byte(tampered))
	if !errors.Is(err, domain.ErrSnapshotCorrupt) {
		t.Errorf("expected ErrSnapshotCorrupt, got %v", err)
	}
}

func TestDecode_Garbage(t *testing.T) {
	for _, in := range []string{"", "not json", `{"version":1}`, `{"version":7,"state":{}}`} {
		if _, err := Decode([]byte(in)); !errors.Is(err, domain.ErrSnapshotCorrupt) {
			t.Errorf("%q: expected ErrSnapshotCorrupt, got %v", in, err)
		}
	}
}

func TestDecode_BrowserLayout(t *testing.T) {
	legacy := `{"state":{"clients":[],"contracts":[{"id":"CTR-1","clientId":"CLI-1","clientName":"Ana",
		"loanValue":1000,"parcelas":2,"juros":10,"totalValue":1100.0000000000002,"pixCode":"X","status":"active",
		"createdAt":"2025-11-20T13:00:00.000Z"}],"paymentGuides":[]},"version":0}`

	s, err := Decode([]byte(legacy))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(s.Contracts) != 1 || s.Contracts[0].Installments != 2 {
		t.Fatalf("unexpected contracts %+v", s.Contracts)
	}
	if !s.Contracts[0].CreatedAt.Equal(time.Date(2025, 11, 20, 13, 0, 0, 0, time.UTC)) {
		t.Errorf("createdAt: %v", s.Contracts[0].CreatedAt)
	}
	if s.AuditEvents == nil || s.Clients == nil {
		t.Error("missing collections must be normalized to empty")
	}
}

func TestEnvelopeLayout(t *testing.T) {
	payload, err := Encode(domain.Snapshot{})
	if err != nil {
		t.Fatal(err)
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatal(err)
	}
	if string(env["version"]) != "1" || len(env["checksum"]) != 66 {
		t.Errorf("unexpected envelope: %s", payload)
	}
	if string(env["state"]) != `{"clients":[],"contracts":[],"paymentGuides":[],"auditEvents":[]}` {
		t.Errorf("unexpected state: %s", env["state"])
	}
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	ctx := context.Background()

	empty := newMemSlot()
	if s := Load(ctx, empty, zerolog.Nop()); !s.Empty() || s.Clients == nil {
		t.Errorf("empty slot: %+v", s)
	}

	broken := newMemSlot()
	broken.loadErr = errors.New("disk gone")
	if s := Load(ctx, broken, zerolog.Nop()); !s.Empty() {
		t.Errorf("unreadable slot: %+v", s)
	}

	corrupt := newMemSlot()
	corrupt.payload = []byte(`{"version":1,"checksum":"00","state":{}}`)
	if s := Load(ctx, corrupt, zerolog.Nop()); !s.Empty() {
		t.Errorf("corrupt slot: %+v", s)
	}

	good := newMemSlot()
	good.payload, _ = Encode(fixtureSnapshot())
	assertSnapshotEqual(t, fixtureSnapshot(), Load(ctx, good, zerolog.Nop()))
}

// ---------------------------------------------------------------------------
// Flusher
// ---------------------------------------------------------------------------

func TestFlusher_WritesLatestSnapshot(t *testing.T) {
	slot := newMemSlot()
	f := NewFlusher(slot, "mem", zerolog.Nop())

	// Queue before starting: only the newest snapshot may survive.
	older := domain.Snapshot{Clients: []domain.Client{{ID: "CLI-1"}}}
	newer := fixtureSnapshot()
	f.OnChange(domain.Change{Snapshot: older})
	f.OnChange(domain.Change{Snapshot: newer})

	ctx, cancel := context.WithCancel(context.Background())
	f.Start(ctx)

	select {
	case <-slot.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was not flushed")
	}
	cancel()
	if err := f.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}

	if slot.saves != 1 {
		t.Errorf("expected 1 save, got %d", slot.saves)
	}
	got, err := Decode(slot.payload)
	if err != nil {
		t.Fatal(err)
	}
	assertSnapshotEqual(t, newer, got)
}

func TestFlusher_DrainsOnShutdown(t *testing.T) {
	slot := newMemSlot()
	f := NewFlusher(slot, "mem", zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.OnChange(domain.Change{Snapshot: fixtureSnapshot()})
	f.Start(ctx)

	waitCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	if err := f.Wait(waitCtx); err != nil {
		t.Fatal(err)
	}
	if slot.saves != 1 {
		t.Errorf("pending snapshot not written on shutdown, saves=%d", slot.saves)
	}
}

func TestFlusher_ChangeRightBeforeCancelIsWritten(t *testing.T) {
	for range 20 {
		slot := newMemSlot()
		f := NewFlusher(slot, "mem", zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		f.Start(ctx)
		f.OnChange(domain.Change{Snapshot: fixtureSnapshot()})
		cancel()

		waitCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
		if err := f.Wait(waitCtx); err != nil {
			stop()
			t.Fatal(err)
		}
		stop()

		got, err := Decode(slot.payload)
		if err != nil {
			t.Fatalf("slot does not hold the last snapshot: %v", err)
		}
		assertSnapshotEqual(t, fixtureSnapshot(), got)
	}
}

func TestFlusher_WriteInProgressSurvivesCancel(t *testing.T) {
	slot := newMemSlot()
	slot.gate = make(chan struct{})
	f := NewFlusher(slot, "mem", zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	f.Start(ctx)
	f.OnChange(domain.Change{Snapshot: fixtureSnapshot()})

	select {
	case <-slot.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("flush never started")
	}
	cancel()
	close(slot.gate)

	waitCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	if err := f.Wait(waitCtx); err != nil {
		t.Fatal(err)
	}
	if slot.saves != 1 {
		t.Fatalf("expected the in-flight write to finish, saves=%d", slot.saves)
	}
	got, err := Decode(slot.payload)
	if err != nil {
		t.Fatal(err)
	}
	assertSnapshotEqual(t, fixtureSnapshot(), got)
}

func TestFlusher_SaveErrorIsReturnedNotPanicked(t *testing.T) {
	slot := newMemSlot()
	slot.saveErr = errors.New("read-only")
	f := NewFlusher(slot, "mem", zerolog.Nop())

	err := f.Flush(context.Background(), fixtureSnapshot())
	if err == nil || !strings.Contains(err.Error(), "read-only") {
		t.Errorf("expected save error, got %v", err)
	}
}
