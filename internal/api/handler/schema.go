package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/supercash/backoffice/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createClientRequest struct {
	Name  string `json:"name"  validate:"required,max=120"`
	CPF   string `json:"cpf"   validate:"required,cpf"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

type issueGuideRequest struct {
	ClientName   string          `json:"clientName" validate:"required,max=120"`
	ClientCPF    string          `json:"clientCpf"  validate:"required,cpf"`
	LoanValue    decimal.Decimal `json:"loanValue"  validate:"gt=0"`
	Installments int             `json:"parcelas"   validate:"required,min=1,max=360"`
	InterestRate decimal.Decimal `json:"juros"      validate:"gte=0"`
	PixCode      string          `json:"pixCode"    validate:"omitempty,max=512"`
}

type issueContractGuideRequest struct {
	Value   decimal.Decimal `json:"value"   validate:"gte=0"`
	PixCode string          `json:"pixCode" validate:"omitempty,max=512"`
}

type updateContractStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active completed cancelled"`
}

// --- Response types ---

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type contractLinks struct {
	Self        string `json:"self"`
	Guides      string `json:"guides"`
	AuditEvents string `json:"auditEvents"`
}

type contractResponse struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"clientId"`
	ClientName       string          `json:"clientName"`
	ClientCPF        string          `json:"clientCpf,omitempty"`
	LoanValue        decimal.Decimal `json:"loanValue"`
	Installments     int             `json:"parcelas"`
	InterestRate     decimal.Decimal `json:"juros"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	InstallmentValue decimal.Decimal `json:"installmentValue"`
	PixCode          string          `json:"pixCode"`
	Status           string          `json:"status"`
	StatusLabel      string          `json:"statusLabel"`
	CreatedAt        time.Time       `json:"createdAt"`
	Links            contractLinks   `json:"_links"`
}

type guideLinks struct {
	PDF     string `json:"pdf"`
	Confirm string `json:"confirm,omitempty"`
}

type guideResponse struct {
	ID          string          `json:"id"`
	ContractID  string          `json:"contractId"`
	ClientID    string          `json:"clientId"`
	ClientName  string          `json:"clientName"`
	ClientCPF   string          `json:"clientCpf"`
	Value       decimal.Decimal `json:"value"`
	ValueLabel  string          `json:"valueLabel"`
	PixCode     string          `json:"pixCode"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"statusLabel"`
	ConfirmedAt *time.Time      `json:"confirmedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	Links       guideLinks      `json:"_links"`
}

type issueResponse struct {
	Contract       contractResponse `json:"contract"`
	Guide          guideResponse    `json:"guide"`
	PDFPath        string           `json:"pdfPath,omitempty"`
	AlreadyExisted bool             `json:"alreadyExisted"`
}

type listClientsResponse struct {
	Items []clientResponse `json:"items"`
}

type listContractsResponse struct {
	Items []contractResponse `json:"items"`
}

type listGuidesResponse struct {
	Items  []guideResponse    `json:"items"`
	Totals domain.GuideTotals `json:"totals"`
}

type listAuditEventsResponse struct {
	Items []domain.AuditEvent `json:"items"`
}

type installmentResponse struct {
	Number  int             `json:"parcela"`
	Value   decimal.Decimal `json:"value"`
	DueDate time.Time       `json:"dueDate"`
	Status  string          `json:"status"`
	PaidAt  *time.Time      `json:"paidAt,omitempty"`
}

type contractDetailResponse struct {
	Contract     contractResponse      `json:"contract"`
	Client       *clientResponse       `json:"client,omitempty"`
	Guides       []guideResponse       `json:"guides"`
	AuditEvents  []domain.AuditEvent   `json:"auditEvents"`
	TotalPaid    decimal.Decimal       `json:"totalPaid"`
	TotalPending decimal.Decimal       `json:"totalPending"`
	Schedule     []installmentResponse `json:"schedule"`
}

type dashboardResponse struct {
	Stats        domain.DashboardStats `json:"stats"`
	RecentGuides []guideResponse       `json:"recentGuides"`
}
