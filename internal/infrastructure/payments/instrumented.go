package payments

import (
	"context"

	"github.com/supercash/backoffice/internal/core/ports"
	"github.com/supercash/backoffice/internal/metrics"
)

type instrumented struct {
	ports.PixCodeProvider
}

// WithMetrics counts every code request of p by provider and result.
func WithMetrics(p ports.PixCodeProvider) ports.PixCodeProvider {
	return instrumented{p}
}

func (i instrumented) NewPixCode(ctx context.Context, req ports.PixCodeRequest) (string, error) {
	code, err := i.PixCodeProvider.NewPixCode(ctx, req)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.PixCodesIssuedTotal.WithLabelValues(i.Name(), result).Inc()
	return code, err
}
