package interfaces

import (
	"context"

	"wiz_adquote/internal/domain/entities"
)

// IDocumentGenerator abstracts the external document generation service.
//
// The workflow hands it the full quote snapshot plus the derived totals and
// expects a success flag and the generated artifact references back. A
// transport error or success=false both fail the Generate stage.
type IDocumentGenerator interface {
	Generate(ctx context.Context, quote entities.Quote, totals entities.Totals) (entities.GenerationResult, error)
}
