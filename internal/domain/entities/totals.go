package entities

// Totals carries every derived monetary figure for one quote snapshot.
//
// Monetary representation:
//   - All fields are non-negative KRW in the smallest currency unit.
//   - DiscountAmount is floored, never rounded, so the customer can not be
//     overcharged by rounding.
type Totals struct {
	TotalMonthly    int64 `json:"total_monthly"`
	DiscountPercent int64 `json:"discount_percent"`
	DiscountAmount  int64 `json:"discount_amount"`
	MonthlyFinal    int64 `json:"monthly_final"`
	Months          int   `json:"months"`
	FinalTotal      int64 `json:"final_total"`
}
