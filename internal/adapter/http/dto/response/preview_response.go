package response

import (
	"time"

	"wiz_adquote/internal/domain/entities"
)

// ApartmentCard is one apartment row rendered for the preview, with all
// monetary values already formatted for display.
type ApartmentCard struct {
	Index         int    `json:"index"`
	ApartmentName string `json:"apartment_name"`
	MonitorCount  int64  `json:"monitor_count"`
	UnitPrice     string `json:"unit_price"`
	MonthlyTotal  string `json:"monthly_total"`
}

// DiscountRow is present in the summary only when a discount actually
// applies.
type DiscountRow struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type PreviewSummary struct {
	TotalMonthly string       `json:"total_monthly"`
	Discount     *DiscountRow `json:"discount,omitempty"`
	MonthlyFinal string       `json:"monthly_final"`
	Months       int          `json:"months"`
	FinalTotal   string       `json:"final_total"`
}

type PreviewCustomer struct {
	Company string `json:"company"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type PreviewManager struct {
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// PreviewResponse is the rendered document preview: everything the operator
// sees before committing to generation.
type PreviewResponse struct {
	DocTypeLabel string          `json:"doc_type_label"`
	Date         string          `json:"date"`
	Customer     PreviewCustomer `json:"customer"`
	Apartments   []ApartmentCard `json:"apartments"`
	Summary      PreviewSummary  `json:"summary"`
	Manager      *PreviewManager `json:"manager,omitempty"`
}

func FromPreview(q entities.Quote, totals entities.Totals) PreviewResponse {
	resp := PreviewResponse{
		DocTypeLabel: q.DocLabel(),
		Date:         time.Now().Format("2006년 01월 02일"),
		Customer: PreviewCustomer{
			Company: q.Customer.Company,
			Name:    q.Customer.Name,
			Email:   q.Customer.Email,
			Phone:   q.Customer.Phone,
		},
		Apartments: apartmentCards(q.LineItems),
		Summary:    previewSummary(q, totals),
	}
	if q.Manager.Name != "" {
		resp.Manager = &PreviewManager{
			Name:     q.Manager.Name,
			Position: q.Manager.Position,
			Phone:    q.Manager.Phone,
			Email:    q.Manager.Email,
		}
	}
	return resp
}

func apartmentCards(items []entities.LineItem) []ApartmentCard {
	cards := make([]ApartmentCard, 0, len(items))
	for i, li := range items {
		cards = append(cards, ApartmentCard{
			Index:         i + 1,
			ApartmentName: li.Name,
			MonitorCount:  li.MonitorCount,
			UnitPrice:     entities.FormatKRW(li.UnitPrice),
			MonthlyTotal:  entities.FormatKRW(li.MonthlyTotal()),
		})
	}
	return cards
}

func previewSummary(q entities.Quote, totals entities.Totals) PreviewSummary {
	s := PreviewSummary{
		TotalMonthly: entities.FormatKRW(totals.TotalMonthly),
		MonthlyFinal: entities.FormatKRW(totals.MonthlyFinal),
		Months:       totals.Months,
		FinalTotal:   entities.FormatKRW(totals.FinalTotal),
	}
	if totals.DiscountPercent > 0 {
		s.Discount = &DiscountRow{
			Label:  q.DiscountTier.Label(),
			Amount: entities.FormatKRW(-totals.DiscountAmount),
		}
	}
	return s
}
