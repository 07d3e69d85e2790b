package service

import (
	"github.com/supercash/backoffice/internal/core/domain"
)

func contractCreatedEvent(c domain.Contract) (string, domain.AuditMetadata) {
	return "Contrato criado para " + c.ClientName, domain.AuditMetadata{
		ContractCreated: &domain.ContractCreatedMetadata{
			LoanValue:    c.LoanValue,
			Installments: c.Installments,
			InterestRate: c.InterestRate,
			TotalValue:   c.TotalValue,
		},
	}
}

func guideEmittedEvent(g domain.PaymentGuide) (string, domain.AuditMetadata) {
	return "Guia de pagamento emitida - " + domain.FormatBRL(g.Value), domain.AuditMetadata{
		GuideEmitted: &domain.GuideEmittedMetadata{
			GuideID: g.ID,
			Value:   g.Value,
			PixCode: g.PixCode,
		},
	}
}

func paymentConfirmedEvent(g domain.PaymentGuide) (string, domain.AuditMetadata) {
	return "Pagamento confirmado - " + domain.FormatBRL(g.Value), domain.AuditMetadata{
		PaymentConfirmed: &domain.PaymentConfirmedMetadata{
			GuideID: g.ID,
			Value:   g.Value,
		},
	}
}

func statusChangedEvent(previous, next domain.ContractStatus) (string, domain.AuditMetadata) {
	return "Status alterado para " + next.Label(), domain.AuditMetadata{
		StatusChanged: &domain.StatusChangedMetadata{
			PreviousStatus: previous,
			NewStatus:      next,
		},
	}
}
