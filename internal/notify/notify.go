// package notify defines the notification side-channel consumed by workflows.
//
// Workflows surface human-readable success/failure messages through a
// [Notifier] rather than a concrete UI toast system, so the same workflow
// code runs under the CLI, the TUI, and headless tests.
package notify

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Severity classifies a notification for display purposes.
type Severity string

const (
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
	Info    Severity = "info"
)

// Notifier accepts fire-and-forget notifications. Implementations must
// preserve emission order; multiple notifications may be emitted for a
// single logical operation (e.g., warning then success).
type Notifier interface {
	Notify(severity Severity, message string)
}

// NotifierFunc adapts a function to the [Notifier] interface.
type NotifierFunc func(severity Severity, message string)

func (f NotifierFunc) Notify(severity Severity, message string) {
	f(severity, message)
}

// LogNotifier renders notifications through a [log.Logger].
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier creates a Notifier backed by the given logger.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the message at a level matching its severity.
func (n *LogNotifier) Notify(severity Severity, message string) {
	switch severity {
	case Success:
		n.logger.Info("✓ " + message)
	case Warning:
		n.logger.Warn(message)
	case Error:
		n.logger.Error(message)
	default:
		n.logger.Info(message)
	}
}

// Notification is a recorded severity/message pair.
type Notification struct {
	Severity Severity
	Message  string
}

// Recorder captures notifications in emission order for assertions in tests
// and for buffered display in the TUI.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify appends the notification to the recorded sequence.
func (r *Recorder) Notify(severity Severity, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, Notification{Severity: severity, Message: message})
}

// All returns a copy of the recorded notifications in emission order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Reset clears the recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = nil
}
