package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus is the state of one scheduled installment.
type InstallmentStatus string

const (
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentOverdue InstallmentStatus = "overdue"
	InstallmentPending InstallmentStatus = "pending"
)

// Installment is one line of a contract's payment schedule.
type Installment struct {
	Number  int               `json:"parcela"`
	Value   decimal.Decimal   `json:"value"`
	DueDate time.Time         `json:"dueDate"`
	Status  InstallmentStatus `json:"status"`
	PaidAt  *time.Time        `json:"paidAt,omitempty"`
}

// BuildSchedule lays out the installments of c. An installment is paid by a
// confirmed guide whose value is within one cent of the installment value;
// each guide settles at most one installment, taken in creation order.
func BuildSchedule(c Contract, guides []PaymentGuide, now time.Time) []Installment {
	if c.Installments <= 0 {
		return []Installment{}
	}
	value := c.InstallmentValue()
	used := make([]bool, len(guides))
	out := make([]Installment, 0, c.Installments)

	for i := 1; i <= c.Installments; i++ {
		item := Installment{
			Number:  i,
			Value:   value,
			DueDate: AddMonths(c.CreatedAt, i),
			Status:  InstallmentPending,
		}
		for j, g := range guides {
			if used[j] || g.Status != GuideConfirmed || g.ContractID != c.ID {
				continue
			}
			if g.Value.Sub(value).Abs().LessThan(cent) {
				used[j] = true
				item.Status = InstallmentPaid
				item.PaidAt = g.ConfirmedAt
				break
			}
		}
		if item.Status != InstallmentPaid && now.After(item.DueDate) {
			item.Status = InstallmentOverdue
		}
		out = append(out, item)
	}
	return out
}

// AddMonths adds n calendar months to t, clamping the day to the last day of
// the target month (Jan 31 + 1 month is Feb 28 or 29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}
