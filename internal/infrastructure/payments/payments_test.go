package payments

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/supercash/backoffice/internal/core/ports"
)

func TestLocalProvider_Format(t *testing.T) {
	p := NewLocalProvider()
	p.now = func() time.Time { return time.UnixMilli(1760000000123) }

	code, err := p.NewPixCode(context.Background(), ports.PixCodeRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^SUPERCASH1760000000123[0-9A-Z]{6}$`).MatchString(code) {
		t.Errorf("unexpected code %q", code)
	}
}

type stubCreator struct {
	req  payment.Request
	resp *payment.Response
	err  error
}

func (s *stubCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	s.req = req
	return s.resp, s.err
}

func TestMercadoPagoProvider_NewPixCode(t *testing.T) {
	resp := &payment.Response{ID: 42, Status: "pending"}
	resp.PointOfInteraction.TransactionData.QRCode = "00020126580014br.gov.bcb.pix"
	stub := &stubCreator{resp: resp}
	p := &MercadoPagoProvider{client: stub, payerEmail: "ops@supercash.com.br", log: zerolog.Nop()}

	code, err := p.NewPixCode(context.Background(), ports.PixCodeRequest{
		Reference: "CTR-1",
		Amount:    decimal.RequireFromString("1100.004"),
		PayerCPF:  "529.982.247-25",
	})
	if err != nil {
		t.Fatal(err)
	}
	if code != "00020126580014br.gov.bcb.pix" {
		t.Errorf("unexpected code %q", code)
	}
	if stub.req.PaymentMethodID != "pix" || stub.req.TransactionAmount != 1100 || stub.req.ExternalReference != "CTR-1" {
		t.Errorf("unexpected request %+v", stub.req)
	}
	if stub.req.Payer == nil || stub.req.Payer.Identification == nil || stub.req.Payer.Identification.Number != "52998224725" {
		t.Errorf("payer identification missing: %+v", stub.req.Payer)
	}
}

func TestMercadoPagoProvider_Errors(t *testing.T) {
	if _, err := NewMercadoPagoProvider("", "", zerolog.Nop()); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Errorf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}

	p := &MercadoPagoProvider{client: &stubCreator{resp: &payment.Response{ID: 7}}, log: zerolog.Nop()}
	if _, err := p.NewPixCode(context.Background(), ports.PixCodeRequest{}); !errors.Is(err, ErrMissingPixCode) {
		t.Errorf("expected ErrMissingPixCode, got %v", err)
	}

	p = &MercadoPagoProvider{client: &stubCreator{err: errors.New("401")}, log: zerolog.Nop()}
	if _, err := p.NewPixCode(context.Background(), ports.PixCodeRequest{}); err == nil {
		t.Error("expected create error")
	}
}
