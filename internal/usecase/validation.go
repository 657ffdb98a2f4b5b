package usecase

import (
	"errors"

	"wiz_adquote/internal/domain/entities"
)

var (
	ErrMissingDocType     = errors.New("no document type selected")
	ErrMissingLineItems   = errors.New("no apartment entered")
	ErrMissingSendChannel = errors.New("no send channel selected")
	ErrMissingEmail       = errors.New("email channel selected without a customer email")
	ErrMissingPhone       = errors.New("messaging channel selected without a customer phone")
)

// ValidateStage selects which rule set ValidateQuote applies.
type ValidateStage string

const (
	ValidatePreview  ValidateStage = "preview"
	ValidateGenerate ValidateStage = "generate"
	ValidateSend     ValidateStage = "send"
)

// ValidateQuote gates a workflow transition. Rules are checked in a fixed
// order and short-circuit on the first failure, so a quote missing several
// things always reports the same reason. The workflow must not advance on a
// non-nil result.
func ValidateQuote(q entities.Quote, stage ValidateStage) error {
	if len(q.DocTypes) == 0 {
		return ErrMissingDocType
	}

	filled := 0
	for _, it := range q.LineItems {
		if it.Filled() {
			filled++
		}
	}
	if filled == 0 {
		return ErrMissingLineItems
	}

	if stage != ValidateSend {
		return nil
	}

	if len(q.SendChannels) == 0 {
		return ErrMissingSendChannel
	}
	if q.HasChannel(entities.ChannelEmail) && q.Customer.Email == "" {
		return ErrMissingEmail
	}
	if q.HasChannel(entities.ChannelMessaging) && q.Customer.Phone == "" {
		return ErrMissingPhone
	}
	return nil
}
