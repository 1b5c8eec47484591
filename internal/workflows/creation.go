package workflows

import (
	"context"
	"fmt"
	"sync"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/notify"
	"github.com/soundwhiskers/swx/internal/shared"
)

// CreateFunc is the injected asynchronous persistence operation. The workflow
// is decoupled from any specific backend; [api.Client.CreatePlaylist]
// satisfies this signature.
type CreateFunc func(ctx context.Context, draft models.PlaylistDraft) (*models.Playlist, error)

// CreationWorkflow is a stateful controller for persisting a playlist.
//
// The creating flag is true for exactly the duration of an attempt and is
// reset as the last observable step, regardless of outcome.
type CreationWorkflow struct {
	create   CreateFunc
	notifier notify.Notifier

	mu       sync.Mutex
	creating bool
}

// NewCreationWorkflow creates a workflow around the injected operation.
func NewCreationWorkflow(create CreateFunc, notifier notify.Notifier) *CreationWorkflow {
	if notifier == nil {
		notifier = notify.NotifierFunc(func(notify.Severity, string) {})
	}
	return &CreationWorkflow{
		create:   create,
		notifier: notifier,
	}
}

// IsCreating reports whether a persistence attempt is in flight.
func (w *CreationWorkflow) IsCreating() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.creating
}

// Create drives one persistence attempt for the draft.
//
// On success the created playlist is returned and a success notification
// fires. Faults from the injected operation — including panics — never
// propagate: they resolve to an error notification and a nil result. The
// only returned error is [shared.ErrOperationPending], when a prior attempt
// has not settled; it is returned silently with no notification.
func (w *CreationWorkflow) Create(ctx context.Context, draft models.PlaylistDraft) (*models.Playlist, error) {
	w.mu.Lock()
	if w.creating {
		w.mu.Unlock()
		return nil, shared.ErrOperationPending
	}
	w.creating = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.creating = false
		w.mu.Unlock()
	}()

	playlist, err := w.invoke(ctx, draft)
	if err != nil {
		w.notifier.Notify(notify.Error, creationFailureMessage(err))
		return nil, nil
	}

	w.notifier.Notify(notify.Success, fmt.Sprintf("Playlist %q created.", playlist.Name))
	return playlist, nil
}

// invoke runs the injected operation, converting panics into errors so the
// creating flag is always reset and no fault escapes the workflow.
func (w *CreationWorkflow) invoke(ctx context.Context, draft models.PlaylistDraft) (playlist *models.Playlist, err error) {
	defer func() {
		if r := recover(); r != nil {
			playlist = nil
			err = fmt.Errorf("create operation panicked: %v", r)
		}
	}()

	playlist, err = w.create(ctx, draft)
	if err == nil && playlist == nil {
		err = fmt.Errorf("create operation returned no playlist")
	}
	return playlist, err
}

// creationFailureMessage uses the fault's message when one is available,
// falling back to the generic failure text.
func creationFailureMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return msgGenericFailure
}
