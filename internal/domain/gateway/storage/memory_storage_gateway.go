package storage

import (
	"context"
	"sync"

	"weather-dashboard/internal/domain/model"
)

type MemoryStorageGateway struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ StorageGateway = (*MemoryStorageGateway)(nil)

func NewMemoryStorageGateway() *MemoryStorageGateway {
	return &MemoryStorageGateway{values: make(map[string]string)}
}

func (gateway *MemoryStorageGateway) Get(_ context.Context, key string) (string, bool, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()
	value, ok := gateway.values[key]
	return value, ok, nil
}

func (gateway *MemoryStorageGateway) Set(_ context.Context, key string, value string) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	gateway.values[key] = value
	return nil
}

func (gateway *MemoryStorageGateway) Health(_ context.Context) model.ComponentHealthStatus {
	return upStatus("memory")
}
