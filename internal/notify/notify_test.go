package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNotifierFunc(t *testing.T) {
	var gotSeverity Severity
	var gotMessage string

	n := NotifierFunc(func(severity Severity, message string) {
		gotSeverity = severity
		gotMessage = message
	})

	n.Notify(Warning, "low track count")

	if gotSeverity != Warning {
		t.Errorf("expected Warning, got %v", gotSeverity)
	}
	if gotMessage != "low track count" {
		t.Errorf("expected message to pass through, got %q", gotMessage)
	}
}

func TestLogNotifier(t *testing.T) {
	tc := []struct {
		name     string
		severity Severity
		message  string
		want     string
	}{
		{"success gets checkmark", Success, "playlist created", "✓ playlist created"},
		{"warning passes through", Warning, "only 3 tracks", "only 3 tracks"},
		{"error passes through", Error, "generation failed", "generation failed"},
		{"info passes through", Info, "starting", "starting"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := log.New(buf)
			logger.SetLevel(log.DebugLevel)

			NewLogNotifier(logger).Notify(tt.severity, tt.message)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected log output to contain %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	t.Run("records in emission order", func(t *testing.T) {
		r := NewRecorder()
		r.Notify(Warning, "first")
		r.Notify(Success, "second")

		all := r.All()
		if len(all) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(all))
		}
		if all[0].Severity != Warning || all[0].Message != "first" {
			t.Errorf("unexpected first notification %+v", all[0])
		}
		if all[1].Severity != Success || all[1].Message != "second" {
			t.Errorf("unexpected second notification %+v", all[1])
		}
	})

	t.Run("All returns a copy", func(t *testing.T) {
		r := NewRecorder()
		r.Notify(Info, "original")

		all := r.All()
		all[0].Message = "mutated"

		if r.All()[0].Message != "original" {
			t.Error("expected recorder contents to be unaffected by mutation")
		}
	})

	t.Run("Reset clears notifications", func(t *testing.T) {
		r := NewRecorder()
		r.Notify(Error, "gone soon")
		r.Reset()

		if len(r.All()) != 0 {
			t.Error("expected no notifications after reset")
		}
	})
}
