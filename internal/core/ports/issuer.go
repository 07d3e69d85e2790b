package ports

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/supercash/backoffice/internal/core/domain"
)

// RegisterClientInput carries the data of a new client.
type RegisterClientInput struct {
	Name  string
	CPF   string
	Email string
	Phone string
}

// IssueGuideInput is the DTO for the issuance flow: one contract plus its first guide.
type IssueGuideInput struct {
	ClientName   string
	ClientCPF    string
	LoanValue    decimal.Decimal
	Installments int
	InterestRate decimal.Decimal
	PixCode      string // generated when empty
	// IdempotencyKey replays the first result for repeated submissions.
	IdempotencyKey string
}

// IssueForContractInput carries the parameters of an extra guide.
// A zero Value defaults to the contract's installment value.
type IssueForContractInput struct {
	Value   decimal.Decimal
	PixCode string
}

// IssueResult is returned by the issuance operations.
type IssueResult struct {
	Contract domain.Contract
	Guide    domain.PaymentGuide
	PDFPath  string // empty when no output directory is configured
	// AlreadyExisted is true when the IdempotencyKey matched an earlier issuance.
	AlreadyExisted bool
}

// Issuer runs the backoffice use cases that mint identifiers.
type Issuer interface {
	RegisterClient(ctx context.Context, input RegisterClientInput) (domain.Client, error)
	Issue(ctx context.Context, input IssueGuideInput) (*IssueResult, error)
	IssueForContract(ctx context.Context, contractID string, input IssueForContractInput) (*IssueResult, error)
}

// PixCodeRequest describes the charge a PIX code is generated for.
type PixCodeRequest struct {
	Reference   string
	Amount      decimal.Decimal
	Description string
	PayerCPF    string
}

// PixCodeProvider produces PIX "copia e cola" codes.
type PixCodeProvider interface {
	Name() string
	NewPixCode(ctx context.Context, req PixCodeRequest) (string, error)
}

// GuideRenderer turns a payment guide into a printable document.
type GuideRenderer interface {
	Render(w io.Writer, guide domain.PaymentGuide) error
	RenderToDir(dir string, guide domain.PaymentGuide) (string, error)
}

// IdempotencyStore maps client-supplied idempotency keys to issued guide ids.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (guideID string, found bool, err error)
	Remember(ctx context.Context, key, guideID string) error
}
