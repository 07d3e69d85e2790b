package handler

import (
	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

func toClientResponse(c domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       c.CPF,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func toContractResponse(c domain.Contract) contractResponse {
	self := "/v1/contracts/" + c.ID
	return contractResponse{
		ID:               c.ID,
		ClientID:         c.ClientID,
		ClientName:       c.ClientName,
		ClientCPF:        c.ClientCPF,
		LoanValue:        c.LoanValue,
		Installments:     c.Installments,
		InterestRate:     c.InterestRate,
		TotalValue:       c.TotalValue,
		InstallmentValue: c.InstallmentValue(),
		PixCode:          c.PixCode,
		Status:           string(c.Status),
		StatusLabel:      c.Status.Label(),
		CreatedAt:        c.CreatedAt,
		Links: contractLinks{
			Self:        self,
			Guides:      self + "/guides",
			AuditEvents: self + "/audit-events",
		},
	}
}

func toGuideResponse(g domain.PaymentGuide) guideResponse {
	links := guideLinks{PDF: "/v1/guides/" + g.ID + "/pdf"}
	if g.Status == domain.GuidePending {
		links.Confirm = "/v1/guides/" + g.ID + "/confirm"
	}
	return guideResponse{
		ID:          g.ID,
		ContractID:  g.ContractID,
		ClientID:    g.ClientID,
		ClientName:  g.ClientName,
		ClientCPF:   g.ClientCPF,
		Value:       g.Value,
		ValueLabel:  domain.FormatBRL(g.Value),
		PixCode:     g.PixCode,
		Status:      string(g.Status),
		StatusLabel: g.Status.Label(),
		ConfirmedAt: g.ConfirmedAt,
		CreatedAt:   g.CreatedAt,
		Links:       links,
	}
}

func toGuideResponses(guides []domain.PaymentGuide) []guideResponse {
	out := make([]guideResponse, 0, len(guides))
	for _, g := range guides {
		out = append(out, toGuideResponse(g))
	}
	return out
}

func toIssueResponse(r *ports.IssueResult) issueResponse {
	return issueResponse{
		Contract:       toContractResponse(r.Contract),
		Guide:          toGuideResponse(r.Guide),
		PDFPath:        r.PDFPath,
		AlreadyExisted: r.AlreadyExisted,
	}
}

func toContractDetailResponse(d *ports.ContractDetail) contractDetailResponse {
	resp := contractDetailResponse{
		Contract:     toContractResponse(d.Contract),
		Guides:       toGuideResponses(d.Guides),
		AuditEvents:  d.AuditEvents,
		TotalPaid:    d.TotalPaid,
		TotalPending: d.TotalPending,
		Schedule:     make([]installmentResponse, 0, len(d.Schedule)),
	}
	if resp.AuditEvents == nil {
		resp.AuditEvents = []domain.AuditEvent{}
	}
	if d.Client != nil {
		c := toClientResponse(*d.Client)
		resp.Client = &c
	}
	for _, in := range d.Schedule {
		resp.Schedule = append(resp.Schedule, installmentResponse{
			Number:  in.Number,
			Value:   in.Value,
			DueDate: in.DueDate,
			Status:  string(in.Status),
			PaidAt:  in.PaidAt,
		})
	}
	return resp
}
