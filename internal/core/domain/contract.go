package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus represents the lifecycle state of a loan contract.
type ContractStatus string

const (
	ContractActive    ContractStatus = "active"
	ContractCompleted ContractStatus = "completed"
	ContractCancelled ContractStatus = "cancelled"
)

var contractStatusLabels = map[ContractStatus]string{
	ContractActive:    "Ativo",
	ContractCompleted: "Finalizado",
	ContractCancelled: "Cancelado",
}

// Valid reports whether s is one of the known contract states.
func (s ContractStatus) Valid() bool {
	_, ok := contractStatusLabels[s]
	return ok
}

// Label returns the pt-BR display name of the status.
func (s ContractStatus) Label() string {
	if l, ok := contractStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Contract is a loan agreement. TotalValue is fixed when the contract is created
// and never recomputed; only Status changes afterwards.
type Contract struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"clientId"`
	ClientName   string          `json:"clientName"`
	ClientCPF    string          `json:"clientCpf,omitempty"`
	LoanValue    decimal.Decimal `json:"loanValue"`
	Installments int             `json:"parcelas"`
	InterestRate decimal.Decimal `json:"juros"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	PixCode      string          `json:"pixCode"`
	Status       ContractStatus  `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewContractInput carries the caller-chosen fields of a new contract.
type NewContractInput struct {
	ID           string
	ClientID     string
	ClientName   string
	ClientCPF    string
	LoanValue    decimal.Decimal
	Installments int
	InterestRate decimal.Decimal
	PixCode      string
	CreatedAt    time.Time
}

// NewContract builds an active contract and computes its total value once.
func NewContract(in NewContractInput) Contract {
	return Contract{
		ID:           in.ID,
		ClientID:     in.ClientID,
		ClientName:   in.ClientName,
		ClientCPF:    in.ClientCPF,
		LoanValue:    in.LoanValue,
		Installments: in.Installments,
		InterestRate: in.InterestRate,
		TotalValue:   TotalValue(in.LoanValue, in.InterestRate),
		PixCode:      in.PixCode,
		Status:       ContractActive,
		CreatedAt:    in.CreatedAt,
	}
}

// InstallmentValue is the value of a single installment.
func (c Contract) InstallmentValue() decimal.Decimal {
	return InstallmentValue(c.TotalValue, c.Installments)
}

// Matches reports whether the client name (case-insensitive) or the id contains term.
func (c Contract) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.ClientName), strings.ToLower(term)) ||
		strings.Contains(c.ID, term)
}
