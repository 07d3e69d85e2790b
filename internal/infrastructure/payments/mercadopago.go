package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

var (
	ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMissingPixCode                = errors.New("mercado pago response has no pix qr code")
)

// paymentCreator is the part of payment.Client used here.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoProvider creates a PIX payment on Mercado Pago and returns its
// "copia e cola" code.
type MercadoPagoProvider struct {
	client     paymentCreator
	payerEmail string
	log        zerolog.Logger
}

// NewMercadoPagoProvider builds a provider for accessToken. payerEmail is sent
// as the payer of every charge since the backoffice does not collect emails.
func NewMercadoPagoProvider(accessToken, payerEmail string, log zerolog.Logger) (*MercadoPagoProvider, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago config: %w", err)
	}
	return &MercadoPagoProvider{
		client:     payment.NewClient(cfg),
		payerEmail: payerEmail,
		log:        log.With().Str("component", "mercadopago").Logger(),
	}, nil
}

func (p *MercadoPagoProvider) Name() string { return "mercadopago" }

func (p *MercadoPagoProvider) NewPixCode(ctx context.Context, req ports.PixCodeRequest) (string, error) {
	amount, _ := req.Amount.Round(2).Float64()

	payer := &payment.PayerRequest{Email: p.payerEmail}
	if cpf := domain.CPFDigits(req.PayerCPF); cpf != "" {
		payer.Identification = &payment.IdentificationRequest{Type: "CPF", Number: cpf}
	}

	resp, err := p.client.Create(ctx, payment.Request{
		TransactionAmount: amount,
		PaymentMethodID:   "pix",
		Description:       req.Description,
		ExternalReference: req.Reference,
		Payer:             payer,
	})
	if err != nil {
		return "", fmt.Errorf("mercado pago create payment: %w", err)
	}

	code := resp.PointOfInteraction.TransactionData.QRCode
	if code == "" {
		return "", fmt.Errorf("payment %d: %w", resp.ID, ErrMissingPixCode)
	}
	p.log.Info().
		Int("payment_id", resp.ID).
		Str("status", resp.Status).
		Str("reference", req.Reference).
		Msg("pix payment created")
	return code, nil
}
