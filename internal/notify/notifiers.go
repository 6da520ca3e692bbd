package notify

import (
	"github.com/alexisbeaulieu97/bookingkit/internal/logger"
	"github.com/alexisbeaulieu97/bookingkit/internal/ports"
)

// LogNotifier records notices through the structured logger.
type LogNotifier struct {
	log *logger.Logger
}

var _ ports.Notifier = LogNotifier{}

func NewLogNotifier(log *logger.Logger) LogNotifier {
	return LogNotifier{log: log.WithComponent("notify")}
}

func (n LogNotifier) Notify(notice ports.Notice) {
	entry := n.log.WithFields(map[string]any{
		"severity": notice.Level.String(),
		"title":    notice.Title,
	})

	switch notice.Level {
	case ports.LevelWarning:
		entry.Warn(notice.Message)
	case ports.LevelError:
		entry.Error(nil, notice.Message)
	default:
		entry.Info(notice.Message)
	}
}

// Multi fans each notice out to every notifier in order.
type Multi []ports.Notifier

func (m Multi) Notify(notice ports.Notice) {
	for _, n := range m {
		if n != nil {
			n.Notify(notice)
		}
	}
}

// Nop discards notices.
type Nop struct{}

func (Nop) Notify(ports.Notice) {}
