package entities

import "strconv"

// DocType identifies a document kind the operator can request.
type DocType string

const (
	DocTypeProposal DocType = "proposal"
	DocTypeEstimate DocType = "estimate"
)

var docTypeLabels = map[DocType]string{
	DocTypeProposal: "제안서",
	DocTypeEstimate: "견적서",
}

// Label returns the customer-facing Korean label for a document kind.
func (d DocType) Label() string {
	if l, ok := docTypeLabels[d]; ok {
		return l
	}
	return "문서"
}

// DocLabel joins the labels of the selected document kinds the way they appear
// in subjects and greetings ("제안서 및 견적서"). Empty input yields the
// generic "문서".
func DocLabel(docTypes []DocType) string {
	out := ""
	for _, d := range []DocType{DocTypeProposal, DocTypeEstimate} {
		for _, sel := range docTypes {
			if sel != d {
				continue
			}
			if out != "" {
				out += " 및 "
			}
			out += d.Label()
			break
		}
	}
	if out == "" {
		return "문서"
	}
	return out
}

// Channel is a delivery method selected independently per quote.
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelMessaging Channel = "messaging"
)

// AllChannels lists channels in their fixed display order.
var AllChannels = []Channel{ChannelEmail, ChannelMessaging}

// DiscountTier is an opaque key into the fixed discount bracket set.
//
// Domain rule: an unrecognized key behaves exactly like DiscountTierNone so
// totals stay computable on any input. Tightening this to an error is a
// product decision that has been explicitly deferred.
type DiscountTier string

const (
	DiscountTierNone DiscountTier = "none"
	DiscountTierA    DiscountTier = "tier_a"
	DiscountTierB    DiscountTier = "tier_b"
	DiscountTierC    DiscountTier = "tier_c"
)

var discountPercents = map[DiscountTier]int64{
	DiscountTierNone: 0,
	DiscountTierA:    5,
	DiscountTierB:    10,
	DiscountTierC:    15,
}

// Percent returns the whole-percent discount rate for the tier, 0 for
// unrecognized keys.
func (t DiscountTier) Percent() int64 {
	return discountPercents[t]
}

// Label returns the Korean label shown next to the discount amount.
func (t DiscountTier) Label() string {
	if p := t.Percent(); p > 0 {
		return strconv.FormatInt(p, 10) + "% 할인"
	}
	return "할인 없음"
}

// Contract durations offered by the form, in months.
var contractMonths = []int{1, 3, 6, 12}

// DefaultContractMonths is used whenever the submitted duration is absent or
// not one of the offered options. Never zero: a zero-month contract would
// degenerate every contract total.
const DefaultContractMonths = 3

// NormalizeMonths maps an arbitrary submitted duration onto the offered set.
func NormalizeMonths(months int) int {
	for _, m := range contractMonths {
		if months == m {
			return months
		}
	}
	return DefaultContractMonths
}

// LineItem is one apartment's monitor count and unit price.
//
// Monetary values are non-negative KRW (no subunit). The monthly subtotal is
// always derived, never stored, so it can not drift from its inputs.
type LineItem struct {
	Name         string `json:"apartment_name"`
	MonitorCount int64  `json:"monitor_count"`
	UnitPrice    int64  `json:"unit_price"`
}

// MonthlyTotal derives the monthly subtotal for this apartment.
func (li LineItem) MonthlyTotal() int64 {
	return li.MonitorCount * li.UnitPrice
}

// Filled reports whether the operator actually entered something: an item
// counts once it has a name or a positive monitor count.
func (li LineItem) Filled() bool {
	return li.Name != "" || li.MonitorCount > 0
}

// Customer is the recipient contact record.
type Customer struct {
	Company string `json:"company"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Manager is the optional sender-side contact printed on documents.
type Manager struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// Quote is the full snapshot taken from the form at the moment of a workflow
// transition. It is rebuilt fresh for every transition and never mutated in
// place; its lifetime is a single workflow step.
type Quote struct {
	DocTypes     []DocType    `json:"doc_types"`
	Customer     Customer     `json:"customer"`
	LineItems    []LineItem   `json:"apartments"`
	DiscountTier DiscountTier `json:"discount"`
	Months       int          `json:"months"`
	Manager      Manager      `json:"manager"`
	SendChannels []Channel    `json:"send_methods"`
}

// HasDocType reports whether the given document kind was selected.
func (q Quote) HasDocType(d DocType) bool {
	for _, sel := range q.DocTypes {
		if sel == d {
			return true
		}
	}
	return false
}

// HasChannel reports whether the given delivery channel was selected.
func (q Quote) HasChannel(c Channel) bool {
	for _, sel := range q.SendChannels {
		if sel == c {
			return true
		}
	}
	return false
}

// DocLabel returns the joined label of the selected document kinds.
func (q Quote) DocLabel() string {
	return DocLabel(q.DocTypes)
}
