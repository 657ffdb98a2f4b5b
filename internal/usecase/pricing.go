package usecase

import (
	"wiz_adquote/internal/domain/entities"
)

// ComputeTotals derives every monetary figure for a quote snapshot.
//
// Pure and idempotent: the caller recomputes on every form change, so the same
// inputs must always produce the same Totals and nothing may be accumulated
// between calls.
//
// Rounding rule: the discount is total_monthly * percent / 100 in integer
// arithmetic. For non-negative operands truncating division is the required
// floor, so the discount can only ever round in the customer's favour.
func ComputeTotals(items []entities.LineItem, tier entities.DiscountTier, months int) entities.Totals {
	var totalMonthly int64
	for _, it := range items {
		totalMonthly += it.MonthlyTotal()
	}

	percent := tier.Percent()
	discount := totalMonthly * percent / 100
	monthlyFinal := totalMonthly - discount

	m := entities.NormalizeMonths(months)

	return entities.Totals{
		TotalMonthly:    totalMonthly,
		DiscountPercent: percent,
		DiscountAmount:  discount,
		MonthlyFinal:    monthlyFinal,
		Months:          m,
		FinalTotal:      monthlyFinal * int64(m),
	}
}
