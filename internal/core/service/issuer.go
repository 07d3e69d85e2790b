package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

type issuer struct {
	store    ports.Store
	pix      ports.PixCodeProvider
	renderer ports.GuideRenderer
	idem     ports.IdempotencyStore
	pdfDir   string
	now      func() time.Time
	log      zerolog.Logger
	keys     keyLocks
}

// NewIssuer returns an Issuer. renderer may be nil and pdfDir empty, in which
// case no PDF file is written during issuance. A nil idem disables replays.
func NewIssuer(
	store ports.Store,
	pix ports.PixCodeProvider,
	renderer ports.GuideRenderer,
	idem ports.IdempotencyStore,
	pdfDir string,
	log zerolog.Logger,
) ports.Issuer {
	return &issuer{
		store:    store,
		pix:      pix,
		renderer: renderer,
		idem:     idem,
		pdfDir:   pdfDir,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With().Str("component", "issuer").Logger(),
	}
}

// RegisterClient validates and stores a new client. CPFs are unique.
func (s *issuer) RegisterClient(_ context.Context, in ports.RegisterClientInput) (domain.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Client{}, fmt.Errorf("register client: %w: name is required", domain.ErrInvalidInput)
	}
	if !domain.ValidCPF(in.CPF) {
		return domain.Client{}, fmt.Errorf("register client: %w", domain.ErrInvalidCPF)
	}
	if existing, ok := s.store.ClientByCPF(in.CPF); ok {
		return domain.Client{}, fmt.Errorf("register client: %w (%s)", domain.ErrClientAlreadyExists, existing.ID)
	}

	now := s.now()
	client := domain.Client{
		ID:        newClientID(now),
		Name:      name,
		CPF:       strings.TrimSpace(in.CPF),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
	}
	s.store.AddClient(client)
	return client, nil
}

// Issue creates an active contract and its first pending guide for the whole total.
// The client id of a registered client with the same CPF is reused. If the
// idempotency key was already used, the earlier result is returned unchanged.
// Calls sharing a key run one at a time, so only the first one issues.
func (s *issuer) Issue(ctx context.Context, in ports.IssueGuideInput) (*ports.IssueResult, error) {
	if in.IdempotencyKey != "" && s.idem != nil {
		defer s.keys.lock(in.IdempotencyKey)()
	}
	if res, ok := s.replay(ctx, in.IdempotencyKey); ok {
		return res, nil
	}

	name := strings.TrimSpace(in.ClientName)
	switch {
	case name == "":
		return nil, fmt.Errorf("issue guide: %w: client name is required", domain.ErrInvalidInput)
	case !domain.ValidCPF(in.ClientCPF):
		return nil, fmt.Errorf("issue guide: %w", domain.ErrInvalidCPF)
	case !in.LoanValue.IsPositive():
		return nil, fmt.Errorf("issue guide: %w: loan value must be positive", domain.ErrInvalidInput)
	case in.Installments < 1:
		return nil, fmt.Errorf("issue guide: %w: at least one installment", domain.ErrInvalidInput)
	case in.InterestRate.IsNegative():
		return nil, fmt.Errorf("issue guide: %w: interest rate must not be negative", domain.ErrInvalidInput)
	}

	now := s.now()
	clientID := newClientID(now)
	if existing, ok := s.store.ClientByCPF(in.ClientCPF); ok {
		clientID = existing.ID
	}

	contract := domain.NewContract(domain.NewContractInput{
		ID:           newContractID(now),
		ClientID:     clientID,
		ClientName:   name,
		ClientCPF:    strings.TrimSpace(in.ClientCPF),
		LoanValue:    in.LoanValue,
		Installments: in.Installments,
		InterestRate: in.InterestRate,
		CreatedAt:    now,
	})

	pixCode, err := s.pixCode(ctx, in.PixCode, ports.PixCodeRequest{
		Reference:   contract.ID,
		Amount:      contract.TotalValue,
		Description: "Super Cash - contrato " + contract.ID,
		PayerCPF:    contract.ClientCPF,
	})
	if err != nil {
		return nil, fmt.Errorf("issue guide: %w", err)
	}
	contract.PixCode = pixCode

	guide := domain.PaymentGuide{
		ID:         newGuideID(now),
		ContractID: contract.ID,
		ClientID:   clientID,
		ClientName: name,
		ClientCPF:  contract.ClientCPF,
		Value:      contract.TotalValue,
		PixCode:    pixCode,
		Status:     domain.GuidePending,
		CreatedAt:  now,
	}

	s.store.AddContract(contract)
	s.store.AddPaymentGuide(guide)
	s.remember(ctx, in.IdempotencyKey, guide.ID)

	return &ports.IssueResult{
		Contract: contract,
		Guide:    guide,
		PDFPath:  s.writePDF(guide),
	}, nil
}

// IssueForContract emits another pending guide for an active contract.
func (s *issuer) IssueForContract(ctx context.Context, contractID string, in ports.IssueForContractInput) (*ports.IssueResult, error) {
	contract, ok := s.store.ContractByID(contractID)
	if !ok {
		return nil, fmt.Errorf("issue guide for %s: %w", contractID, domain.ErrContractNotFound)
	}
	if contract.Status != domain.ContractActive {
		return nil, fmt.Errorf("issue guide for %s: %w", contractID, domain.ErrContractNotActive)
	}

	value := in.Value
	switch {
	case value.IsNegative():
		return nil, fmt.Errorf("issue guide for %s: %w: value must not be negative", contractID, domain.ErrInvalidInput)
	case value.IsZero():
		value = contract.InstallmentValue()
	}

	cpf := contract.ClientCPF
	if cpf == "" {
		if c, found := s.store.ClientByID(contract.ClientID); found {
			cpf = c.CPF
		}
	}

	now := s.now()
	guideID := newGuideID(now)
	pixCode, err := s.pixCode(ctx, in.PixCode, ports.PixCodeRequest{
		Reference:   guideID,
		Amount:      value,
		Description: "Super Cash - contrato " + contract.ID,
		PayerCPF:    cpf,
	})
	if err != nil {
		return nil, fmt.Errorf("issue guide for %s: %w", contractID, err)
	}

	guide := domain.PaymentGuide{
		ID:         guideID,
		ContractID: contract.ID,
		ClientID:   contract.ClientID,
		ClientName: contract.ClientName,
		ClientCPF:  cpf,
		Value:      value,
		PixCode:    pixCode,
		Status:     domain.GuidePending,
		CreatedAt:  now,
	}
	s.store.AddPaymentGuide(guide)

	return &ports.IssueResult{
		Contract: contract,
		Guide:    guide,
		PDFPath:  s.writePDF(guide),
	}, nil
}

func (s *issuer) replay(ctx context.Context, key string) (*ports.IssueResult, bool) {
	if key == "" || s.idem == nil {
		return nil, false
	}
	guideID, found, err := s.idem.Lookup(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, issuing anyway")
		return nil, false
	}
	if !found {
		return nil, false
	}
	guide, ok := s.store.GuideByID(guideID)
	if !ok {
		return nil, false
	}
	contract, ok := s.store.ContractByID(guide.ContractID)
	if !ok {
		return nil, false
	}
	s.log.Info().Str("idempotency_key", key).Str("guide_id", guideID).Msg("idempotent replay")
	return &ports.IssueResult{Contract: contract, Guide: guide, AlreadyExisted: true}, true
}

func (s *issuer) remember(ctx context.Context, key, guideID string) {
	if key == "" || s.idem == nil {
		return
	}
	if err := s.idem.Remember(ctx, key, guideID); err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to record idempotency key")
	}
}

func (s *issuer) pixCode(ctx context.Context, given string, req ports.PixCodeRequest) (string, error) {
	if code := strings.TrimSpace(given); code != "" {
		return code, nil
	}
	if s.pix == nil {
		return "", fmt.Errorf("%w: pix code is required", domain.ErrInvalidInput)
	}
	code, err := s.pix.NewPixCode(ctx, req)
	if err != nil {
		return "", fmt.Errorf("pix code via %s: %w", s.pix.Name(), err)
	}
	return code, nil
}

// writePDF logs render failures, panics included, and returns an empty path.
// The guide is already stored when it runs.
func (s *issuer) writePDF(guide domain.PaymentGuide) (path string) {
	if s.renderer == nil || s.pdfDir == "" {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("guide_id", guide.ID).Msg("guide pdf renderer panicked")
			path = ""
		}
	}()
	path, err := s.renderer.RenderToDir(s.pdfDir, guide)
	if err != nil {
		s.log.Warn().Err(err).Str("guide_id", guide.ID).Msg("failed to write guide pdf")
		return ""
	}
	s.log.Info().Str("guide_id", guide.ID).Str("path", path).Msg("guide pdf written")
	return path
}
