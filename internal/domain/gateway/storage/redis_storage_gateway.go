package storage

import (
	"context"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

type RedisStorageGateway struct {
	client *redis.Client
}

var _ StorageGateway = (*RedisStorageGateway)(nil)

func NewRedisStorageGateway(client *redis.Client) *RedisStorageGateway {
	return &RedisStorageGateway{client: client}
}

func (gateway *RedisStorageGateway) Get(ctx context.Context, key string) (string, bool, error) {
	return gateway.client.Lookup(ctx, key)
}

// Set stores the value without expiration
func (gateway *RedisStorageGateway) Set(ctx context.Context, key string, value string) error {
	return gateway.client.Set(ctx, key, value, 0)
}

func (gateway *RedisStorageGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	details, err := gateway.client.HealthDetails(ctx)
	status := upStatus("redis")
	if err != nil {
		status = downStatus("redis", err)
	}
	for key, value := range details {
		status.Details[key] = value
	}
	return status
}
