package workflows

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/notify"
	"github.com/soundwhiskers/swx/internal/shared"
)

type mockGenerator struct {
	preview *models.GenerationPreview
	err     error
	calls   int
	block   chan struct{} // when set, GeneratePlaylist waits before returning
}

func (m *mockGenerator) GeneratePlaylist(ctx context.Context, prompt string) (*models.GenerationPreview, error) {
	m.calls++
	if m.block != nil {
		<-m.block
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.preview, nil
}

func isPro() bool  { return true }
func isFree() bool { return false }

func TestGenerationWorkflow_Generate(t *testing.T) {
	tests := []struct {
		name          string
		gateway       *mockGenerator
		wantErr       error
		wantStatus    GenerationStatus
		wantCount     int
		wantSeverity  []notify.Severity
		wantInMessage string
	}{
		{
			name: "successful generation",
			gateway: &mockGenerator{
				preview: &models.GenerationPreview{Count: 15, Tracks: make([]models.Track, 15)},
			},
			wantStatus:   StatusPreview,
			wantCount:    15,
			wantSeverity: []notify.Severity{notify.Success},
		},
		{
			name: "successful generation below recommended minimum",
			gateway: &mockGenerator{
				preview: &models.GenerationPreview{Count: 8, WarningUnderMinCount: true},
			},
			wantStatus:    StatusPreview,
			wantCount:     8,
			wantSeverity:  []notify.Severity{notify.Warning, notify.Success},
			wantInMessage: "8",
		},
		{
			name:          "entitlement denied by server",
			gateway:       &mockGenerator{err: shared.ErrProPlanRequired},
			wantErr:       shared.ErrProPlanRequired,
			wantStatus:    StatusIdle,
			wantSeverity:  []notify.Severity{notify.Error},
			wantInMessage: "Pro plan",
		},
		{
			name:          "quota exceeded",
			gateway:       &mockGenerator{err: shared.ErrQuotaExceeded},
			wantErr:       shared.ErrQuotaExceeded,
			wantStatus:    StatusIdle,
			wantSeverity:  []notify.Severity{notify.Error},
			wantInMessage: "limit",
		},
		{
			name:          "generic failure carries fault message",
			gateway:       &mockGenerator{err: fmt.Errorf("API request failed: status 500: upstream model unavailable")},
			wantErr:       nil, // any non-nil error accepted, checked below
			wantStatus:    StatusIdle,
			wantSeverity:  []notify.Severity{notify.Error},
			wantInMessage: "upstream model unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := notify.NewRecorder()
			w := NewGenerationWorkflow(tt.gateway, recorder, isPro)

			err := w.Generate(context.Background(), "upbeat running mix")

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.gateway.err != nil && err == nil {
				t.Error("Generate() expected error for gateway failure")
			}

			if got := w.Status(); got != tt.wantStatus {
				t.Errorf("Status() = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == StatusPreview {
				preview := w.Preview()
				if preview == nil {
					t.Fatal("Preview() = nil after successful generation")
				}
				if preview.Count != tt.wantCount {
					t.Errorf("Preview().Count = %d, want %d", preview.Count, tt.wantCount)
				}
			}

			notifications := recorder.All()
			if len(notifications) != len(tt.wantSeverity) {
				t.Fatalf("got %d notifications, want %d: %v", len(notifications), len(tt.wantSeverity), notifications)
			}
			for i, severity := range tt.wantSeverity {
				if notifications[i].Severity != severity {
					t.Errorf("notification[%d].Severity = %v, want %v", i, notifications[i].Severity, severity)
				}
			}
			if tt.wantInMessage != "" && !strings.Contains(notifications[0].Message, tt.wantInMessage) {
				t.Errorf("notification[0].Message = %q, want substring %q", notifications[0].Message, tt.wantInMessage)
			}
		})
	}
}

func TestGenerationWorkflow_EntitlementGuard(t *testing.T) {
	gateway := &mockGenerator{preview: &models.GenerationPreview{Count: 10}}
	recorder := notify.NewRecorder()
	w := NewGenerationWorkflow(gateway, recorder, isFree)

	err := w.Generate(context.Background(), "lofi focus beats")

	if !errors.Is(err, shared.ErrProPlanRequired) {
		t.Errorf("Generate() error = %v, want ErrProPlanRequired", err)
	}
	if gateway.calls != 0 {
		t.Errorf("gateway called %d times, want 0 (guard must short-circuit)", gateway.calls)
	}
	if w.Status() != StatusIdle {
		t.Errorf("Status() = %v, want idle (guard makes no transition)", w.Status())
	}

	notifications := recorder.All()
	if len(notifications) != 1 || notifications[0].Severity != notify.Error {
		t.Fatalf("want exactly one error notification, got %v", notifications)
	}
}

func TestGenerationWorkflow_Projections(t *testing.T) {
	check := func(t *testing.T, w *GenerationWorkflow) {
		t.Helper()
		if w.IsGenerating() != (w.Status() == StatusGenerating) {
			t.Errorf("IsGenerating() = %v disagrees with Status() = %v", w.IsGenerating(), w.Status())
		}
		if w.IsPreviewing() != (w.Status() == StatusPreview) {
			t.Errorf("IsPreviewing() = %v disagrees with Status() = %v", w.IsPreviewing(), w.Status())
		}
	}

	gateway := &mockGenerator{preview: &models.GenerationPreview{Count: 12}}
	w := NewGenerationWorkflow(gateway, notify.NewRecorder(), isPro)

	check(t, w)
	if err := w.Generate(context.Background(), "dinner party jazz"); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	check(t, w)

	gateway.err = errors.New("network down")
	_ = w.Generate(context.Background(), "dinner party jazz")
	check(t, w)

	w.Reset()
	check(t, w)
}

func TestGenerationWorkflow_FailureKeepsPreview(t *testing.T) {
	gateway := &mockGenerator{preview: &models.GenerationPreview{Count: 15}}
	w := NewGenerationWorkflow(gateway, notify.NewRecorder(), isPro)

	if err := w.Generate(context.Background(), "road trip anthems"); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	stored := w.Preview()

	gateway.err = shared.ErrQuotaExceeded
	_ = w.Generate(context.Background(), "road trip anthems vol. 2")

	if w.Status() != StatusIdle {
		t.Errorf("Status() = %v, want idle after failure", w.Status())
	}
	if w.Preview() != stored {
		t.Error("Preview() changed on failure, want earlier preview left untouched")
	}
}

func TestGenerationWorkflow_Reset(t *testing.T) {
	gateway := &mockGenerator{preview: &models.GenerationPreview{Count: 15}}
	w := NewGenerationWorkflow(gateway, notify.NewRecorder(), isPro)

	if err := w.Generate(context.Background(), "morning coffee acoustic"); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	w.Reset()
	if w.Status() != StatusIdle {
		t.Errorf("Status() = %v, want idle after reset", w.Status())
	}
	if w.Preview() != nil {
		t.Error("Preview() should be nil after reset")
	}

	// Idempotent from idle
	w.Reset()
	if w.Status() != StatusIdle || w.Preview() != nil {
		t.Error("Reset() from idle should be a no-op")
	}
}

func TestGenerationWorkflow_RejectsOverlappingCall(t *testing.T) {
	gateway := &mockGenerator{
		preview: &models.GenerationPreview{Count: 10},
		block:   make(chan struct{}),
	}
	recorder := notify.NewRecorder()
	w := NewGenerationWorkflow(gateway, recorder, isPro)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- w.Generate(context.Background(), "first")
	}()

	// Wait for the first call to be in flight.
	for !w.IsGenerating() {
		time.Sleep(time.Millisecond)
	}

	if err := w.Generate(context.Background(), "second"); !errors.Is(err, shared.ErrOperationPending) {
		t.Errorf("Generate() while pending = %v, want ErrOperationPending", err)
	}
	if len(recorder.All()) != 0 {
		t.Error("rejected call must not emit notifications")
	}

	close(gateway.block)
	if err := <-firstDone; err != nil {
		t.Errorf("first Generate() error = %v", err)
	}
	if gateway.calls != 1 {
		t.Errorf("gateway called %d times, want 1", gateway.calls)
	}
}

func TestGenerationStatus_String(t *testing.T) {
	tests := []struct {
		status GenerationStatus
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusGenerating, "generating"},
		{StatusPreview, "preview"},
		{GenerationStatus(99), ""},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("GenerationStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
