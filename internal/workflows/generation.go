package workflows

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/notify"
	"github.com/soundwhiskers/swx/internal/shared"
)

// GenerationStatus enumerates the states of the generation workflow.
type GenerationStatus int

const (
	StatusIdle GenerationStatus = iota
	StatusGenerating
	StatusPreview
)

func (s GenerationStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusGenerating:
		return "generating"
	case StatusPreview:
		return "preview"
	default:
		return ""
	}
}

// User-facing messages for the closed failure set.
const (
	msgUpgradeRequired = "AI playlist generation requires a Pro plan. Upgrade to continue."
	msgQuotaExceeded   = "Generation limit reached. Try again later."
	msgGenericFailure  = "Something went wrong. Please try again."
	msgGenerated       = "Playlist generated! Review the preview before saving."
)

// Generator performs the generation network call. Implemented by [api.Client];
// abstracted for headless testing.
type Generator interface {
	GeneratePlaylist(ctx context.Context, prompt string) (*models.GenerationPreview, error)
}

// GenerationWorkflow is a stateful controller for AI playlist generation.
//
// A workflow instance is created per UI session and holds no state beyond the
// current status and the last stored preview.
type GenerationWorkflow struct {
	gateway  Generator
	notifier notify.Notifier
	entitled func() bool

	mu      sync.Mutex
	status  GenerationStatus
	preview *models.GenerationPreview
}

// NewGenerationWorkflow creates a workflow in the idle state.
//
// entitled is read once per Generate invocation and gates whether generation
// may start at all; the workflow never mutates it. A nil entitled treats the
// account as entitled and defers entirely to the server-side check.
func NewGenerationWorkflow(gateway Generator, notifier notify.Notifier, entitled func() bool) *GenerationWorkflow {
	if notifier == nil {
		notifier = notify.NotifierFunc(func(notify.Severity, string) {})
	}
	return &GenerationWorkflow{
		gateway:  gateway,
		notifier: notifier,
		entitled: entitled,
	}
}

// Status returns the current workflow state.
func (w *GenerationWorkflow) Status() GenerationStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// IsGenerating reports whether a generation call is in flight.
func (w *GenerationWorkflow) IsGenerating() bool {
	return w.Status() == StatusGenerating
}

// IsPreviewing reports whether a generated preview is available for review.
func (w *GenerationWorkflow) IsPreviewing() bool {
	return w.Status() == StatusPreview
}

// Preview returns the stored preview, or nil when none has been generated.
func (w *GenerationWorkflow) Preview() *models.GenerationPreview {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.preview
}

// Generate drives one generation attempt for the prompt.
//
// The entitlement guard runs before any state transition or network call.
// Every failure transitions back to idle and emits exactly one error
// notification; the returned error is informational (already surfaced) except
// for [shared.ErrOperationPending], which is returned silently when a prior
// call has not settled.
func (w *GenerationWorkflow) Generate(ctx context.Context, prompt string) error {
	w.mu.Lock()
	if w.status == StatusGenerating {
		w.mu.Unlock()
		return shared.ErrOperationPending
	}

	if w.entitled != nil && !w.entitled() {
		w.mu.Unlock()
		w.notifier.Notify(notify.Error, msgUpgradeRequired)
		return shared.ErrProPlanRequired
	}

	// Transition before the request is issued so the UI reflects the
	// in-flight call immediately.
	w.status = StatusGenerating
	w.mu.Unlock()

	preview, err := w.gateway.GeneratePlaylist(ctx, prompt)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		// The stored preview from an earlier attempt is left untouched.
		w.status = StatusIdle
		w.notifier.Notify(notify.Error, failureMessage(err))
		return err
	}

	w.preview = preview
	if preview.WarningUnderMinCount {
		w.notifier.Notify(notify.Warning,
			fmt.Sprintf("Only %d tracks were generated, fewer than the recommended minimum.", preview.Count))
	}
	w.notifier.Notify(notify.Success, msgGenerated)
	w.status = StatusPreview

	return nil
}

// Reset discards the stored preview and returns to idle from any state.
// Calling it from idle is a no-op.
func (w *GenerationWorkflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.preview = nil
	w.status = StatusIdle
}

// failureMessage maps a classified gateway error onto its user-facing text,
// falling back to the fault's own message when one is available.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrProPlanRequired):
		return msgUpgradeRequired
	case errors.Is(err, shared.ErrQuotaExceeded):
		return msgQuotaExceeded
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return msgGenericFailure
}
