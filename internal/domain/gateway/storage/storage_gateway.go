package storage

import (
	"context"
	"errors"

	"weather-dashboard/internal/domain/model"
)

// ErrUnknownDriver is returned when the configured storage driver is not supported
var ErrUnknownDriver = errors.New("unknown storage driver")

// StorageGateway is a string key/value store holding the dashboard's persisted state
type StorageGateway interface {
	// Get returns the value stored under key; found is false when the key is absent
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key string, value string) error

	// Health reports whether the backing store is reachable
	Health(ctx context.Context) model.ComponentHealthStatus
}

func upStatus(driver string) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":  driver,
			"message": string(model.StatusUp),
		},
	}
}

func downStatus(driver string, err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"driver":  driver,
			"message": err.Error(),
		},
	}
}
