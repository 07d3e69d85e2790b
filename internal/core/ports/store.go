package ports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/supercash/backoffice/internal/core/domain"
)

// ListContractsFilter narrows ListContracts. Empty fields match everything.
type ListContractsFilter struct {
	Status domain.ContractStatus
	Search string // client name (case-insensitive) or contract id substring
}

// ListGuidesFilter narrows ListGuides. Empty fields match everything.
type ListGuidesFilter struct {
	Status     domain.GuideStatus
	ContractID string
}

// ContractDetail is the full view of one contract.
type ContractDetail struct {
	Contract     domain.Contract
	Client       *domain.Client
	Guides       []domain.PaymentGuide // newest first
	AuditEvents  []domain.AuditEvent   // newest first
	TotalPaid    decimal.Decimal
	TotalPending decimal.Decimal
	Schedule     []domain.Installment
}

// Store is the in-process record of clients, contracts, guides and audit events.
type Store interface {
	AddClient(client domain.Client)
	AddContract(contract domain.Contract)
	AddPaymentGuide(guide domain.PaymentGuide)
	ConfirmPayment(guideID string) (domain.PaymentGuide, error)
	UpdateContractStatus(contractID string, status domain.ContractStatus) (domain.Contract, error)

	Stats() domain.DashboardStats
	ClientByID(id string) (domain.Client, bool)
	ClientByCPF(cpf string) (domain.Client, bool)
	ContractByID(id string) (domain.Contract, bool)
	GuideByID(id string) (domain.PaymentGuide, bool)
	GuidesByContractID(contractID string) []domain.PaymentGuide
	AuditEventsByContractID(contractID string) []domain.AuditEvent

	ListClients(search string) []domain.Client
	ListContracts(filter ListContractsFilter) []domain.Contract
	ListGuides(filter ListGuidesFilter) []domain.PaymentGuide
	RecentGuides(n int) []domain.PaymentGuide
	GuideTotals() domain.GuideTotals
	ContractDetail(contractID string, now time.Time) (*ContractDetail, error)
	Snapshot() domain.Snapshot
}
