package notify

import (
	"context"

	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/model"
)

// QueueNotifier sends every notification to a message queue
type QueueNotifier struct {
	sender    queue.Sender
	queueName string
}

func NewQueueNotifier(sender queue.Sender, queueName string) *QueueNotifier {
	return &QueueNotifier{sender: sender, queueName: queueName}
}

func (n *QueueNotifier) Notify(kind model.NotificationKind, message string) {
	notification := newNotification(kind, message)
	deliverAsync("queue:"+n.queueName, func(ctx context.Context) error {
		return n.sender.SendMessage(ctx, n.queueName, notification)
	})
}
