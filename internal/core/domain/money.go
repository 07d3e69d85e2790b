package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	cent    = decimal.New(1, -2)
)

// TotalValue returns principal x (1 + rate/100), rounded to cents.
func TotalValue(principal, rate decimal.Decimal) decimal.Decimal {
	return principal.Mul(decimal.NewFromInt(1).Add(rate.Div(hundred))).Round(2)
}

// InstallmentValue splits total evenly across n installments.
// A non-positive n yields the total itself.
func InstallmentValue(total decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return total
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// FormatAmount renders v with pt-BR grouping and two decimals, e.g. "1.100,00".
// It works on the decimal digits, so any magnitude is exact.
func FormatAmount(v decimal.Decimal) string {
	digits := v.StringFixed(2)
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	intPart, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// FormatBRL renders v as a Brazilian real amount, e.g. "R$ 1.100,00".
func FormatBRL(v decimal.Decimal) string {
	return "R$ " + FormatAmount(v)
}
