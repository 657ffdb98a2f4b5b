package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"wiz_adquote/internal/domain/entities"
	"wiz_adquote/internal/usecase/interfaces"
)

var (
	ErrGenerationFailed  = errors.New("document generation failed")
	ErrDeliveryFailed    = errors.New("document delivery failed")
	ErrNothingGenerated  = errors.New("no generated documents to send")
	ErrMissingGenerator  = errors.New("document generator not configured")
	ErrMissingDelivery   = errors.New("delivery gateway not configured")
	ErrMissingRepository = errors.New("artifact repository not configured")
)

// IWorkflowUseCase exposes the operator-facing quote workflow operations.
//
// These operations map 1:1 onto the pipeline stages:
//   - Preview  => Draft → Previewing
//   - Generate => Previewing → Generating
//   - Send     => Generating → Sending → Completed
type IWorkflowUseCase interface {
	Preview(ctx context.Context, q entities.Quote) (PreviewResult, error)
	Generate(ctx context.Context, q entities.Quote) (entities.GenerationResult, error)
	Send(ctx context.Context, q entities.Quote) (ReportView, error)
	Stage() entities.Stage
}

// PreviewResult is the read-only snapshot a successful Preview renders from.
type PreviewResult struct {
	Quote  entities.Quote
	Totals entities.Totals
}

// WorkflowUseCase drives the Draft → Preview → Generate → Send pipeline for a
// single operator session.
//
// Concurrency model: every operation snapshots the submitted form, runs, and
// only then tries to commit its result. A newer request supersedes an older
// in-flight one: in-flight external calls are not cancelled, but a stale
// completion is never applied to session state (last request wins). There are
// no automatic retries anywhere; every failure is reported and left to the
// operator, since re-sending automatically risks duplicate delivery.
type WorkflowUseCase struct {
	generator interfaces.IDocumentGenerator
	delivery  interfaces.IDeliveryGateway
	artifacts interfaces.IArtifactRepository
	log       zerolog.Logger

	seq atomic.Uint64

	mu          sync.Mutex
	stage       entities.Stage
	lastPreview PreviewResult
	generated   []entities.Artifact
	lastReport  ReportView
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(
	generator interfaces.IDocumentGenerator,
	delivery interfaces.IDeliveryGateway,
	artifacts interfaces.IArtifactRepository,
	log zerolog.Logger,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		generator: generator,
		delivery:  delivery,
		artifacts: artifacts,
		log:       log,
		stage:     entities.StageDraft,
	}
}

// Stage returns the current pipeline position.
func (w *WorkflowUseCase) Stage() entities.Stage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stage
}

// LastPreview returns the preview snapshot currently shown to the operator.
func (w *WorkflowUseCase) LastPreview() PreviewResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastPreview
}

// GeneratedArtifacts returns the artifacts of the newest observed Generate.
func (w *WorkflowUseCase) GeneratedArtifacts() []entities.Artifact {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generated
}

// LastReport returns the delivery report of the newest completed Send.
func (w *WorkflowUseCase) LastReport() ReportView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastReport
}

// Preview validates the snapshot and derives its totals. On a validation
// failure the session stays where it was and the reason is surfaced.
func (w *WorkflowUseCase) Preview(_ context.Context, q entities.Quote) (PreviewResult, error) {
	seq := w.seq.Add(1)

	if err := ValidateQuote(q, ValidatePreview); err != nil {
		return PreviewResult{}, err
	}

	res := PreviewResult{Quote: q, Totals: ComputeTotals(q.LineItems, q.DiscountTier, q.Months)}

	w.commit(seq, func() {
		w.stage = entities.StagePreviewing
		w.lastPreview = res
	})
	return res, nil
}

// Generate re-validates the (possibly edited) snapshot and invokes the
// generation service. Any service failure, including success=false, returns
// the session to Draft with a single generic reason.
func (w *WorkflowUseCase) Generate(ctx context.Context, q entities.Quote) (entities.GenerationResult, error) {
	if w.generator == nil {
		return entities.GenerationResult{}, ErrMissingGenerator
	}
	if w.artifacts == nil {
		return entities.GenerationResult{}, ErrMissingRepository
	}

	seq := w.seq.Add(1)

	if err := ValidateQuote(q, ValidateGenerate); err != nil {
		return entities.GenerationResult{}, err
	}

	totals := ComputeTotals(q.LineItems, q.DiscountTier, q.Months)
	res, err := w.generator.Generate(ctx, q, totals)
	if err != nil {
		w.log.Error().Err(err).Msg("generation service call failed")
		w.fail(seq)
		return entities.GenerationResult{}, ErrGenerationFailed
	}
	if !res.Success {
		w.log.Warn().Msg("generation service declined")
		w.fail(seq)
		return entities.GenerationResult{}, ErrGenerationFailed
	}

	for _, a := range res.Artifacts {
		if _, err := w.artifacts.Create(ctx, a); err != nil {
			w.log.Error().Err(err).Str("artifact_id", a.ID).Msg("artifact registration failed")
			w.fail(seq)
			return entities.GenerationResult{}, ErrGenerationFailed
		}
	}

	// A successful run with no rendered documents is still a completed
	// Generate (a proposal-only quote attaches a fixed file at send time),
	// so the observed artifact list is never nil.
	generated := res.Artifacts
	if generated == nil {
		generated = []entities.Artifact{}
	}

	w.commit(seq, func() {
		w.stage = entities.StageGenerating
		w.generated = generated
	})
	w.log.Info().Int("artifacts", len(generated)).Msg("documents generated")
	return res, nil
}

// Send validates the snapshot against the send rules and dispatches the
// artifacts of the newest observed Generate. The session always reaches
// Completed once the delivery service responds: partial failure is a valid
// terminal outcome and is reported per channel, never by aborting.
func (w *WorkflowUseCase) Send(ctx context.Context, q entities.Quote) (ReportView, error) {
	if w.delivery == nil {
		return ReportView{}, ErrMissingDelivery
	}

	w.mu.Lock()
	artifacts := w.generated
	w.mu.Unlock()
	// Ordering guarantee: Send is never issued before Generate's response
	// has been observed.
	if artifacts == nil {
		return ReportView{}, ErrNothingGenerated
	}

	seq := w.seq.Add(1)

	if err := ValidateQuote(q, ValidateSend); err != nil {
		return ReportView{}, err
	}

	w.commit(seq, func() {
		w.stage = entities.StageSending
	})

	outcomes, err := w.delivery.Dispatch(ctx, entities.DeliveryRequest{
		Artifacts: artifacts,
		Customer:  q.Customer,
		Channels:  q.SendChannels,
		DocTypes:  q.DocTypes,
	})
	if err != nil {
		w.log.Error().Err(err).Msg("delivery service call failed")
		w.fail(seq)
		return ReportView{}, ErrDeliveryFailed
	}

	report := BuildReport(outcomes, artifacts)
	w.commit(seq, func() {
		w.stage = entities.StageCompleted
		w.lastReport = report
	})
	for _, line := range report.Lines {
		w.log.Info().
			Str("channel", string(line.Channel)).
			Bool("success", line.Success).
			Str("message", line.Message).
			Msg("delivery outcome")
	}
	return report, nil
}

// commit applies a completed stage run to session state unless a newer run
// has started since; stale completions are dropped.
func (w *WorkflowUseCase) commit(seq uint64, apply func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seq.Load() != seq {
		w.log.Debug().Uint64("seq", seq).Msg("stale stage result dropped")
		return false
	}
	apply()
	return true
}

// fail recovers the session to Draft, unless superseded.
func (w *WorkflowUseCase) fail(seq uint64) {
	w.commit(seq, func() {
		w.stage = entities.StageDraft
	})
}
