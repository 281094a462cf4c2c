package cart

import "log/slog"

// Notice levels mirror the storefront toast styles.
const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

// Notifier surfaces user-visible messages (the toast analogue). Cart
// mutations warn rather than fail on stock limits, so the messages are the
// only signal the shopper gets.
type Notifier interface {
	Notify(level, message string)
}

// SlogNotifier logs notices; the default when no UI is attached.
type SlogNotifier struct {
	log *slog.Logger
}

func NewSlogNotifier(log *slog.Logger) *SlogNotifier {
	return &SlogNotifier{log: log}
}

func (n *SlogNotifier) Notify(level, message string) {
	switch level {
	case NoticeWarning:
		n.log.Warn(message)
	case NoticeError:
		n.log.Error(message)
	default:
		n.log.Info(message)
	}
}

// Notice is a recorded notification, used by the RecordingNotifier.
type Notice struct {
	Level   string
	Message string
}

// RecordingNotifier collects notices for assertions in tests.
type RecordingNotifier struct {
	Notices []Notice
}

func (n *RecordingNotifier) Notify(level, message string) {
	n.Notices = append(n.Notices, Notice{Level: level, Message: message})
}
