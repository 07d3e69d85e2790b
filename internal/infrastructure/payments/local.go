package payments

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/supercash/backoffice/internal/core/ports"
)

const pixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// LocalProvider mints opaque codes of the form SUPERCASH<unix ms><6 upper alnum>.
type LocalProvider struct {
	now func() time.Time
}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{now: time.Now}
}

func (p *LocalProvider) Name() string { return "local" }

func (p *LocalProvider) NewPixCode(_ context.Context, _ ports.PixCodeRequest) (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("pix code entropy: %w", err)
	}
	for i, v := range b {
		b[i] = pixAlphabet[int(v)%len(pixAlphabet)]
	}
	return fmt.Sprintf("SUPERCASH%d%s", p.now().UnixMilli(), b), nil
}
