package notify

import (
	"context"
	"time"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// publishTimeout bounds a single asynchronous delivery to a remote sink
const publishTimeout = 5 * time.Second

// Notifier is the toast collaborator: fire-and-forget, nothing is returned to the caller
type Notifier interface {
	Notify(kind model.NotificationKind, message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(kind model.NotificationKind, message string)

var _ Notifier = NotifierFunc(nil)

func (f NotifierFunc) Notify(kind model.NotificationKind, message string) {
	f(kind, message)
}

// MultiNotifier forwards every notification to each of its sinks in order
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(kind model.NotificationKind, message string) {
	for _, n := range m {
		n.Notify(kind, message)
	}
}

func newNotification(kind model.NotificationKind, message string) model.Notification {
	return model.Notification{Kind: kind, Message: message, CreatedAt: time.Now()}
}

// deliverAsync runs a remote publish without blocking the caller
func deliverAsync(sink string, publish func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := publish(ctx); err != nil {
			log.Error(msg.GetMessage("notify.publish-failed", sink, err))
		}
	}()
}
