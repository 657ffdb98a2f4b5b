package interfaces

import (
	"context"

	"wiz_adquote/internal/domain/entities"
)

// IArtifactRepository abstracts DynamoDB persistence for generated artifacts.
//
// The registry exists for traceability and safe downloads: every generated
// document is recorded, and the download endpoint only ever serves paths that
// came out of this registry.
type IArtifactRepository interface {
	Create(ctx context.Context, a entities.Artifact) (entities.Artifact, error)
	GetByID(ctx context.Context, id string) (entities.Artifact, error)
}
