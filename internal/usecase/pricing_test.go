package usecase

import (
	"testing"

	"wiz_adquote/internal/domain/entities"
)

func TestComputeTotals_Scenario(t *testing.T) {
	// 2 apartments, tier_b (10%), 6 months.
	items := []entities.LineItem{
		{Name: "A", MonitorCount: 3, UnitPrice: 100},
		{Name: "B", MonitorCount: 2, UnitPrice: 150},
	}

	got := ComputeTotals(items, entities.DiscountTierB, 6)

	if got.TotalMonthly != 600 {
		t.Fatalf("expected total_monthly 600, got %d", got.TotalMonthly)
	}
	if got.DiscountAmount != 60 {
		t.Fatalf("expected discount_amount 60, got %d", got.DiscountAmount)
	}
	if got.MonthlyFinal != 540 {
		t.Fatalf("expected monthly_final 540, got %d", got.MonthlyFinal)
	}
	if got.FinalTotal != 3240 {
		t.Fatalf("expected final_total 3240, got %d", got.FinalTotal)
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	items := []entities.LineItem{
		{Name: "한빛아파트", MonitorCount: 17, UnitPrice: 33000},
		{Name: "동산아파트", MonitorCount: 4, UnitPrice: 27500},
	}

	first := ComputeTotals(items, entities.DiscountTierC, 12)
	second := ComputeTotals(items, entities.DiscountTierC, 12)
	if first != second {
		t.Fatalf("expected identical totals, got %+v and %+v", first, second)
	}
}

func TestComputeTotals_DiscountFloor(t *testing.T) {
	cases := []struct {
		name     string
		monthly  int64
		tier     entities.DiscountTier
		discount int64
	}{
		{name: "none", monthly: 999, tier: entities.DiscountTierNone, discount: 0},
		{name: "5pct floors", monthly: 999, tier: entities.DiscountTierA, discount: 49},
		{name: "10pct exact", monthly: 600, tier: entities.DiscountTierB, discount: 60},
		{name: "10pct floors", monthly: 605, tier: entities.DiscountTierB, discount: 60},
		{name: "15pct floors", monthly: 1, tier: entities.DiscountTierC, discount: 0},
		{name: "15pct floors odd", monthly: 333, tier: entities.DiscountTierC, discount: 49},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := []entities.LineItem{{Name: "X", MonitorCount: 1, UnitPrice: tc.monthly}}
			got := ComputeTotals(items, tc.tier, 3)
			if got.DiscountAmount != tc.discount {
				t.Fatalf("expected discount %d, got %d", tc.discount, got.DiscountAmount)
			}
			if got.MonthlyFinal != tc.monthly-tc.discount {
				t.Fatalf("expected monthly_final %d, got %d", tc.monthly-tc.discount, got.MonthlyFinal)
			}
			if got.MonthlyFinal < 0 {
				t.Fatalf("monthly_final must never be negative, got %d", got.MonthlyFinal)
			}
		})
	}
}

func TestComputeTotals_UnknownTierBehavesLikeNone(t *testing.T) {
	items := []entities.LineItem{{Name: "A", MonitorCount: 5, UnitPrice: 20000}}

	unknown := ComputeTotals(items, entities.DiscountTier("legacy_20"), 6)
	none := ComputeTotals(items, entities.DiscountTierNone, 6)
	if unknown != none {
		t.Fatalf("unknown tier must price like none: %+v vs %+v", unknown, none)
	}
	if unknown.DiscountPercent != 0 {
		t.Fatalf("expected zero percent, got %d", unknown.DiscountPercent)
	}
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	got := ComputeTotals(nil, entities.DiscountTierB, 6)
	if got.TotalMonthly != 0 || got.DiscountAmount != 0 || got.FinalTotal != 0 {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestComputeTotals_NormalizesMonths(t *testing.T) {
	items := []entities.LineItem{{Name: "A", MonitorCount: 1, UnitPrice: 100}}

	got := ComputeTotals(items, entities.DiscountTierNone, 0)
	if got.Months != entities.DefaultContractMonths {
		t.Fatalf("expected default months, got %d", got.Months)
	}
	if got.FinalTotal != 300 {
		t.Fatalf("expected final_total 300, got %d", got.FinalTotal)
	}
}
