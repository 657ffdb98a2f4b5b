package entities

import "testing"

func TestLineItem_MonthlyTotal(t *testing.T) {
	cases := []struct {
		name     string
		item     LineItem
		expected int64
	}{
		{name: "zero", item: LineItem{}, expected: 0},
		{name: "simple", item: LineItem{MonitorCount: 3, UnitPrice: 100}, expected: 300},
		{name: "large", item: LineItem{MonitorCount: 250, UnitPrice: 45000}, expected: 11250000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.MonthlyTotal(); got != tc.expected {
				t.Fatalf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestLineItem_Filled(t *testing.T) {
	if (LineItem{}).Filled() {
		t.Fatalf("empty item must not count")
	}
	if !(LineItem{Name: "한빛아파트"}).Filled() {
		t.Fatalf("named item must count")
	}
	if !(LineItem{MonitorCount: 1}).Filled() {
		t.Fatalf("item with monitors must count")
	}
	if (LineItem{UnitPrice: 1000}).Filled() {
		t.Fatalf("price alone must not count")
	}
}

func TestDiscountTier_Percent(t *testing.T) {
	cases := []struct {
		tier     DiscountTier
		expected int64
	}{
		{DiscountTierNone, 0},
		{DiscountTierA, 5},
		{DiscountTierB, 10},
		{DiscountTierC, 15},
		{DiscountTier("weird"), 0},
		{DiscountTier(""), 0},
	}
	for _, tc := range cases {
		if got := tc.tier.Percent(); got != tc.expected {
			t.Fatalf("tier %q: expected %d, got %d", tc.tier, tc.expected, got)
		}
	}
}

func TestDiscountTier_Label(t *testing.T) {
	if got := DiscountTierB.Label(); got != "10% 할인" {
		t.Fatalf("unexpected label %q", got)
	}
	// Unknown keys behave exactly like none.
	if got := DiscountTier("bogus").Label(); got != DiscountTierNone.Label() {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestNormalizeMonths(t *testing.T) {
	cases := []struct {
		in, out int
	}{
		{1, 1}, {3, 3}, {6, 6}, {12, 12},
		{0, 3}, {-4, 3}, {7, 3}, {24, 3},
	}
	for _, tc := range cases {
		if got := NormalizeMonths(tc.in); got != tc.out {
			t.Fatalf("months %d: expected %d, got %d", tc.in, tc.out, got)
		}
	}
}

func TestDocLabel(t *testing.T) {
	cases := []struct {
		name     string
		docTypes []DocType
		expected string
	}{
		{name: "proposal only", docTypes: []DocType{DocTypeProposal}, expected: "제안서"},
		{name: "estimate only", docTypes: []DocType{DocTypeEstimate}, expected: "견적서"},
		{name: "both", docTypes: []DocType{DocTypeProposal, DocTypeEstimate}, expected: "제안서 및 견적서"},
		{name: "order independent", docTypes: []DocType{DocTypeEstimate, DocTypeProposal}, expected: "제안서 및 견적서"},
		{name: "empty", docTypes: nil, expected: "문서"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DocLabel(tc.docTypes); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestQuote_Selections(t *testing.T) {
	q := Quote{
		DocTypes:     []DocType{DocTypeEstimate},
		SendChannels: []Channel{ChannelEmail},
	}
	if !q.HasDocType(DocTypeEstimate) || q.HasDocType(DocTypeProposal) {
		t.Fatalf("unexpected doc type membership")
	}
	if !q.HasChannel(ChannelEmail) || q.HasChannel(ChannelMessaging) {
		t.Fatalf("unexpected channel membership")
	}
}
