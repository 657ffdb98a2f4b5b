package entities

// Stage represents the workflow pipeline position for the operator session.
//
// Domain notes:
//   - Draft → Previewing → Generating → Sending → Completed.
//   - There is no terminal error state: any stage failure recovers to Draft
//     and control returns to editing.
type Stage string

const (
	StageDraft      Stage = "draft"
	StagePreviewing Stage = "previewing"
	StageGenerating Stage = "generating"
	StageSending    Stage = "sending"
	StageCompleted  Stage = "completed"
)
