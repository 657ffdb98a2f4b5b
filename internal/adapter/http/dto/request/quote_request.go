package request

import (
	"strings"

	"wiz_adquote/internal/domain/entities"
)

// ApartmentRequest carries one row of the apartment table exactly as the form
// submits it, including empty trailing rows.
type ApartmentRequest struct {
	ApartmentName string `json:"apartment_name"`
	MonitorCount  int64  `json:"monitor_count"`
	UnitPrice     int64  `json:"unit_price"`
}

type CustomerRequest struct {
	Company string `json:"company"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type ManagerRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// QuoteRequest is the full form snapshot submitted on every workflow
// transition. The same payload shape serves preview, generate and send.
type QuoteRequest struct {
	DocTypes    []string           `json:"doc_types"`
	Customer    CustomerRequest    `json:"customer"`
	Apartments  []ApartmentRequest `json:"apartments"`
	Discount    string             `json:"discount"`
	Months      int                `json:"months"`
	Manager     ManagerRequest     `json:"manager"`
	SendMethods []string           `json:"send_methods"`
}

// ToQuote normalizes the raw form payload into a domain quote: whitespace is
// trimmed, unrecognized selections are dropped, empty apartment rows are
// filtered out, and negative numbers are clamped to zero. Validation proper
// happens downstream; normalization never fails.
func (r QuoteRequest) ToQuote() entities.Quote {
	return entities.Quote{
		DocTypes: r.docTypes(),
		Customer: entities.Customer{
			Company: strings.TrimSpace(r.Customer.Company),
			Name:    strings.TrimSpace(r.Customer.Name),
			Email:   strings.TrimSpace(r.Customer.Email),
			Phone:   strings.TrimSpace(r.Customer.Phone),
		},
		LineItems:    r.lineItems(),
		DiscountTier: entities.DiscountTier(strings.TrimSpace(r.Discount)),
		Months:       entities.NormalizeMonths(r.Months),
		Manager: entities.Manager{
			Name:     strings.TrimSpace(r.Manager.Name),
			Position: strings.TrimSpace(r.Manager.Position),
			Phone:    strings.TrimSpace(r.Manager.Phone),
			Email:    strings.TrimSpace(r.Manager.Email),
		},
		SendChannels: r.sendChannels(),
	}
}

func (r QuoteRequest) docTypes() []entities.DocType {
	out := make([]entities.DocType, 0, len(r.DocTypes))
	for _, raw := range r.DocTypes {
		switch d := entities.DocType(strings.TrimSpace(raw)); d {
		case entities.DocTypeProposal, entities.DocTypeEstimate:
			out = append(out, d)
		}
	}
	return out
}

func (r QuoteRequest) sendChannels() []entities.Channel {
	out := make([]entities.Channel, 0, len(r.SendMethods))
	for _, raw := range r.SendMethods {
		switch c := entities.Channel(strings.TrimSpace(raw)); c {
		case entities.ChannelEmail, entities.ChannelMessaging:
			out = append(out, c)
		}
	}
	return out
}

func (r QuoteRequest) lineItems() []entities.LineItem {
	out := make([]entities.LineItem, 0, len(r.Apartments))
	for _, a := range r.Apartments {
		li := entities.LineItem{
			Name:         strings.TrimSpace(a.ApartmentName),
			MonitorCount: clampNonNegative(a.MonitorCount),
			UnitPrice:    clampNonNegative(a.UnitPrice),
		}
		if li.Filled() {
			out = append(out, li)
		}
	}
	return out
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
