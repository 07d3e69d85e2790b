package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AuditEventType identifies what kind of mutation an audit event records.
type AuditEventType string

const (
	AuditContractCreated  AuditEventType = "contract_created"
	AuditGuideEmitted     AuditEventType = "guide_emitted"
	AuditPaymentConfirmed AuditEventType = "payment_confirmed"
	AuditStatusChanged    AuditEventType = "status_changed"
)

// ContractCreatedMetadata is attached to contract_created events.
type ContractCreatedMetadata struct {
	LoanValue    decimal.Decimal `json:"loanValue"`
	Installments int             `json:"parcelas"`
	InterestRate decimal.Decimal `json:"juros"`
	TotalValue   decimal.Decimal `json:"totalValue"`
}

// GuideEmittedMetadata is attached to guide_emitted events.
type GuideEmittedMetadata struct {
	GuideID string          `json:"guideId"`
	Value   decimal.Decimal `json:"value"`
	PixCode string          `json:"pixCode"`
}

// PaymentConfirmedMetadata is attached to payment_confirmed events.
type PaymentConfirmedMetadata struct {
	GuideID string          `json:"guideId"`
	Value   decimal.Decimal `json:"value"`
}

// StatusChangedMetadata is attached to status_changed events.
type StatusChangedMetadata struct {
	PreviousStatus ContractStatus `json:"previousStatus"`
	NewStatus      ContractStatus `json:"newStatus"`
}

// AuditMetadata holds exactly one variant, matching the event type.
type AuditMetadata struct {
	ContractCreated  *ContractCreatedMetadata
	GuideEmitted     *GuideEmittedMetadata
	PaymentConfirmed *PaymentConfirmedMetadata
	StatusChanged    *StatusChangedMetadata
}

// Type returns the event type implied by the populated variant, or "" when empty.
func (m AuditMetadata) Type() AuditEventType {
	switch {
	case m.ContractCreated != nil:
		return AuditContractCreated
	case m.GuideEmitted != nil:
		return AuditGuideEmitted
	case m.PaymentConfirmed != nil:
		return AuditPaymentConfirmed
	case m.StatusChanged != nil:
		return AuditStatusChanged
	default:
		return ""
	}
}

func (m AuditMetadata) variant() any {
	switch m.Type() {
	case AuditContractCreated:
		return m.ContractCreated
	case AuditGuideEmitted:
		return m.GuideEmitted
	case AuditPaymentConfirmed:
		return m.PaymentConfirmed
	case AuditStatusChanged:
		return m.StatusChanged
	default:
		return struct{}{}
	}
}

// AuditEvent is an append-only record of a mutation on a contract.
type AuditEvent struct {
	ID          string
	ContractID  string
	Type        AuditEventType
	Description string
	Metadata    AuditMetadata
	CreatedAt   time.Time
}

type auditEventJSON struct {
	ID          string          `json:"id"`
	ContractID  string          `json:"contractId"`
	Type        AuditEventType  `json:"type"`
	Description string          `json:"description"`
	Metadata    json.RawMessage `json:"metadata"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// MarshalJSON writes the metadata variant as a flat object under "metadata".
func (e AuditEvent) MarshalJSON() ([]byte, error) {
	meta, err := json.Marshal(e.Metadata.variant())
	if err != nil {
		return nil, err
	}
	return json.Marshal(auditEventJSON{
		ID:          e.ID,
		ContractID:  e.ContractID,
		Type:        e.Type,
		Description: e.Description,
		Metadata:    meta,
		CreatedAt:   e.CreatedAt,
	})
}

// UnmarshalJSON decodes "metadata" into the variant selected by "type".
func (e *AuditEvent) UnmarshalJSON(data []byte) error {
	var raw auditEventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var meta AuditMetadata
	var target any
	switch raw.Type {
	case AuditContractCreated:
		meta.ContractCreated = &ContractCreatedMetadata{}
		target = meta.ContractCreated
	case AuditGuideEmitted:
		meta.GuideEmitted = &GuideEmittedMetadata{}
		target = meta.GuideEmitted
	case AuditPaymentConfirmed:
		meta.PaymentConfirmed = &PaymentConfirmedMetadata{}
		target = meta.PaymentConfirmed
	case AuditStatusChanged:
		meta.StatusChanged = &StatusChangedMetadata{}
		target = meta.StatusChanged
	default:
		return fmt.Errorf("audit event %q: unknown type %q", raw.ID, raw.Type)
	}
	if len(raw.Metadata) > 0 && string(raw.Metadata) != "null" {
		if err := json.Unmarshal(raw.Metadata, target); err != nil {
			return fmt.Errorf("audit event %q metadata: %w", raw.ID, err)
		}
	}

	*e = AuditEvent{
		ID:          raw.ID,
		ContractID:  raw.ContractID,
		Type:        raw.Type,
		Description: raw.Description,
		Metadata:    meta,
		CreatedAt:   raw.CreatedAt,
	}
	return nil
}
