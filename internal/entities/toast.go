package entities

import "time"

type ToastSeverity string

const (
	SeveritySuccess ToastSeverity = "success"
	SeverityInfo    ToastSeverity = "info"
	SeverityWarning ToastSeverity = "warning"
	SeverityError   ToastSeverity = "error"
)

func (s ToastSeverity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityInfo, SeverityWarning, SeverityError:
		return true
	}
	return false
}

const DefaultToastDuration = 3 * time.Second

// Toast is ephemeral UI state, never persisted. The queue that owns it holds
// no timers; auto-hide scheduling belongs to the rendering layer.
type Toast struct {
	ID       string
	Message  string
	Severity ToastSeverity
	Duration time.Duration
}

type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Severity  ToastSeverity `json:"severity"`
	Read      bool          `json:"read"`
	CreatedAt string        `json:"createdAt"`
}
