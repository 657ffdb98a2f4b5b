package usecase

import (
	"errors"
	"testing"

	"wiz_adquote/internal/domain/entities"
)

func validQuote() entities.Quote {
	return entities.Quote{
		DocTypes: []entities.DocType{entities.DocTypeEstimate},
		Customer: entities.Customer{
			Company: "한빛상사",
			Name:    "김담당",
			Email:   "kim@hanbit.example",
			Phone:   "010-1234-5678",
		},
		LineItems:    []entities.LineItem{{Name: "한빛아파트", MonitorCount: 3, UnitPrice: 100000}},
		DiscountTier: entities.DiscountTierNone,
		Months:       3,
		SendChannels: []entities.Channel{entities.ChannelEmail},
	}
}

func TestValidateQuote_DocTypeFirst(t *testing.T) {
	// Missing both doc types and line items: the first rule must win.
	q := entities.Quote{}
	if err := ValidateQuote(q, ValidatePreview); !errors.Is(err, ErrMissingDocType) {
		t.Fatalf("expected ErrMissingDocType, got %v", err)
	}
}

func TestValidateQuote_LineItems(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		q := validQuote()
		q.LineItems = nil
		if err := ValidateQuote(q, ValidatePreview); !errors.Is(err, ErrMissingLineItems) {
			t.Fatalf("expected ErrMissingLineItems, got %v", err)
		}
	})

	t.Run("only empty rows", func(t *testing.T) {
		q := validQuote()
		q.LineItems = []entities.LineItem{{}, {UnitPrice: 40000}}
		if err := ValidateQuote(q, ValidateGenerate); !errors.Is(err, ErrMissingLineItems) {
			t.Fatalf("expected ErrMissingLineItems, got %v", err)
		}
	})

	t.Run("name alone counts", func(t *testing.T) {
		q := validQuote()
		q.LineItems = []entities.LineItem{{Name: "동산아파트"}}
		if err := ValidateQuote(q, ValidatePreview); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("monitor count alone counts", func(t *testing.T) {
		q := validQuote()
		q.LineItems = []entities.LineItem{{MonitorCount: 2}}
		if err := ValidateQuote(q, ValidatePreview); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestValidateQuote_SendRules(t *testing.T) {
	t.Run("channel rules only apply at send", func(t *testing.T) {
		q := validQuote()
		q.SendChannels = nil
		for _, stage := range []ValidateStage{ValidatePreview, ValidateGenerate} {
			if err := ValidateQuote(q, stage); err != nil {
				t.Fatalf("stage %s: unexpected error: %v", stage, err)
			}
		}
		if err := ValidateQuote(q, ValidateSend); !errors.Is(err, ErrMissingSendChannel) {
			t.Fatalf("expected ErrMissingSendChannel, got %v", err)
		}
	})

	t.Run("email channel requires address", func(t *testing.T) {
		q := validQuote()
		q.Customer.Email = ""
		if err := ValidateQuote(q, ValidateSend); !errors.Is(err, ErrMissingEmail) {
			t.Fatalf("expected ErrMissingEmail, got %v", err)
		}

		q.Customer.Email = "kim@hanbit.example"
		if err := ValidateQuote(q, ValidateSend); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("messaging channel requires phone", func(t *testing.T) {
		q := validQuote()
		q.SendChannels = []entities.Channel{entities.ChannelMessaging}
		q.Customer.Phone = ""
		if err := ValidateQuote(q, ValidateSend); !errors.Is(err, ErrMissingPhone) {
			t.Fatalf("expected ErrMissingPhone, got %v", err)
		}
	})

	t.Run("phone not required for email only", func(t *testing.T) {
		q := validQuote()
		q.Customer.Phone = ""
		if err := ValidateQuote(q, ValidateSend); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
