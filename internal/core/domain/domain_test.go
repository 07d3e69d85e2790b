package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ---------------------------------------------------------------------------
// Money
// ---------------------------------------------------------------------------

func TestTotalValue(t *testing.T) {
	cases := []struct {
		principal, rate, want string
	}{
		{"1000", "10", "1100"},
		{"1000", "0", "1000"},
		{"1234.56", "2.5", "1265.42"},
		{"0.01", "33.333", "0.01"},
	}
	for _, tc := range cases {
		got := TotalValue(dec(tc.principal), dec(tc.rate))
		if !got.Equal(dec(tc.want)) {
			t.Errorf("TotalValue(%s, %s) = %s, want %s", tc.principal, tc.rate, got, tc.want)
		}
	}
}

func TestInstallmentValue(t *testing.T) {
	if got := InstallmentValue(dec("1100"), 2); !got.Equal(dec("550")) {
		t.Errorf("expected 550, got %s", got)
	}
	if got := InstallmentValue(dec("100"), 3); !got.Equal(dec("33.33")) {
		t.Errorf("expected 33.33, got %s", got)
	}
	if got := InstallmentValue(dec("100"), 0); !got.Equal(dec("100")) {
		t.Errorf("expected total for zero installments, got %s", got)
	}
}

func TestFormatBRL(t *testing.T) {
	if got := FormatBRL(dec("1100")); got != "R$ 1.100,00" {
		t.Errorf("got %q", got)
	}
	if got := FormatBRL(dec("550.5")); got != "R$ 550,50" {
		t.Errorf("got %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"0.005", "0,01"},
		{"999.999", "1.000,00"},
		{"123456", "123.456,00"},
		{"1234567.8", "1.234.567,80"},
		{"-1234.5", "-1.234,50"},
		{"12345678901234567.89", "12.345.678.901.234.567,89"},
		{"9007199254740993.01", "9.007.199.254.740.993,01"},
	}
	for _, tc := range cases {
		if got := FormatAmount(dec(tc.in)); got != tc.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Client
// ---------------------------------------------------------------------------

func TestValidCPF(t *testing.T) {
	cases := map[string]bool{
		"529.982.247-25": true,
		"52998224725":    true,
		"529.982.247-24": false,
		"111.111.111-11": false,
		"1234":           false,
		"529.982.247-2a": false,
	}
	for in, want := range cases {
		if got := ValidCPF(in); got != want {
			t.Errorf("ValidCPF(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestClientMatches(t *testing.T) {
	c := Client{Name: "Maria Souza", CPF: "529.982.247-25"}
	if !c.Matches("maria") || !c.Matches("982.247") || !c.Matches("") {
		t.Error("expected match")
	}
	if c.Matches("joao") {
		t.Error("unexpected match")
	}
}

// ---------------------------------------------------------------------------
// Contract / guide status
// ---------------------------------------------------------------------------

func TestContractStatusLabel(t *testing.T) {
	want := map[ContractStatus]string{
		ContractActive:    "Ativo",
		ContractCompleted: "Finalizado",
		ContractCancelled: "Cancelado",
	}
	for s, l := range want {
		if !s.Valid() || s.Label() != l {
			t.Errorf("%s: valid=%v label=%q", s, s.Valid(), s.Label())
		}
	}
	if ContractStatus("archived").Valid() {
		t.Error("unknown status must be invalid")
	}
}

func TestGuideConfirmed(t *testing.T) {
	g := PaymentGuide{ID: "GUI-1", Status: GuidePending}
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	out, err := g.Confirmed(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != GuideConfirmed || out.ConfirmedAt == nil || !out.ConfirmedAt.Equal(ts) {
		t.Errorf("unexpected guide: %+v", out)
	}
	if g.Status != GuidePending || g.ConfirmedAt != nil {
		t.Error("receiver must not be modified")
	}

	_, err = out.Confirmed(ts.Add(time.Hour))
	if !errors.Is(err, ErrGuideAlreadyConfirmed) {
		t.Errorf("expected ErrGuideAlreadyConfirmed, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Audit events
// ---------------------------------------------------------------------------

func TestAuditEvent_JSONKeepsFlatMetadata(t *testing.T) {
	ev := AuditEvent{
		ID:          "AUD-1-abcd",
		ContractID:  "CTR-1",
		Type:        AuditStatusChanged,
		Description: "Status alterado para Finalizado",
		Metadata: AuditMetadata{StatusChanged: &StatusChangedMetadata{
			PreviousStatus: ContractActive,
			NewStatus:      ContractCompleted,
		}},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"metadata":{"previousStatus":"active","newStatus":"completed"}`) {
		t.Errorf("unexpected metadata layout: %s", data)
	}

	var back AuditEvent
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Metadata.Type() != AuditStatusChanged || back.Metadata.StatusChanged.NewStatus != ContractCompleted {
		t.Errorf("metadata not restored: %+v", back.Metadata)
	}
	if !back.CreatedAt.Equal(ev.CreatedAt) {
		t.Errorf("createdAt: got %v", back.CreatedAt)
	}
}

func TestAuditEvent_UnmarshalUnknownType(t *testing.T) {
	var ev AuditEvent
	err := json.Unmarshal([]byte(`{"id":"x","type":"deleted","metadata":{}}`), &ev)
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
}

// ---------------------------------------------------------------------------
// Stats and schedule
// ---------------------------------------------------------------------------

func TestComputeStats(t *testing.T) {
	s := Snapshot{
		Contracts: []Contract{{Status: ContractActive}, {Status: ContractCancelled}},
		PaymentGuides: []PaymentGuide{
			{Value: dec("100"), Status: GuideConfirmed},
			{Value: dec("50.5"), Status: GuideConfirmed},
			{Value: dec("70"), Status: GuidePending},
		},
	}
	got := ComputeStats(s)
	if !got.TotalCollected.Equal(dec("150.5")) || got.GuidesIssued != 3 ||
		got.ActiveContracts != 1 || got.PendingConfirmations != 1 {
		t.Errorf("unexpected stats: %+v", got)
	}

	empty := ComputeStats(Snapshot{})
	if !empty.TotalCollected.IsZero() || empty.GuidesIssued != 0 {
		t.Errorf("unexpected empty stats: %+v", empty)
	}
}

func TestAddMonths_ClampsToMonthEnd(t *testing.T) {
	jan31 := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)
	if got := AddMonths(jan31, 1); !got.Equal(time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v", got)
	}
	if got := AddMonths(jan31, 2); !got.Equal(time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v", got)
	}
}

func TestBuildSchedule(t *testing.T) {
	created := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	c := Contract{ID: "CTR-1", Installments: 3, TotalValue: dec("300"), CreatedAt: created}
	paidAt := created.AddDate(0, 0, 20)
	guides := []PaymentGuide{
		{ContractID: "CTR-1", Value: dec("100.004"), Status: GuideConfirmed, ConfirmedAt: &paidAt},
		{ContractID: "CTR-1", Value: dec("100"), Status: GuidePending},
		{ContractID: "CTR-1", Value: dec("300"), Status: GuideConfirmed, ConfirmedAt: &paidAt},
	}
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	got := BuildSchedule(c, guides, now)
	if len(got) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(got))
	}
	if got[0].Status != InstallmentPaid || got[0].PaidAt == nil {
		t.Errorf("installment 1: %+v", got[0])
	}
	if got[1].Status != InstallmentOverdue {
		t.Errorf("installment 2 should be overdue, got %s", got[1].Status)
	}
	if got[2].Status != InstallmentPending {
		t.Errorf("installment 3 should be pending, got %s", got[2].Status)
	}
	if !got[2].DueDate.Equal(time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("installment 3 due date: %v", got[2].DueDate)
	}
}
