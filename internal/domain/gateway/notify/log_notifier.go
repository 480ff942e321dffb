package notify

import (
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
)

// LogNotifier writes notifications to the application log
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(kind model.NotificationKind, message string) {
	if kind == model.NotificationError {
		log.Error(message, zap.String("notification_kind", string(kind)))
		return
	}
	log.Info(message, zap.String("notification_kind", string(kind)))
}
