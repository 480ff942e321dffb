package notify

import (
	"context"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

// RedisNotifier publishes every notification as JSON on a pub/sub channel
type RedisNotifier struct {
	publisher *redis.Publisher
	channel   string
}

func NewRedisNotifier(publisher *redis.Publisher, channel string) *RedisNotifier {
	return &RedisNotifier{publisher: publisher, channel: channel}
}

func (n *RedisNotifier) Notify(kind model.NotificationKind, message string) {
	notification := newNotification(kind, message)
	deliverAsync("redis:"+n.channel, func(ctx context.Context) error {
		return n.publisher.PublishJSON(ctx, n.channel, notification)
	})
}
