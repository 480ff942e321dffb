package dashboard

import (
	"context"
	"errors"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

var (
	ErrDuplicateCity   = errors.New("city is already tracked")
	ErrReadingNotFound = errors.New("reading not found")
	ErrNotLoaded       = errors.New("dashboard is still loading")
	ErrAlreadyLoaded   = errors.New("dashboard is already loaded")
)

// DefaultCities are tracked when nothing usable is persisted
var DefaultCities = []entity.City{
	{Name: "New York", Country: "US"},
	{Name: "London", Country: "UK"},
	{Name: "Tokyo", Country: "JP"},
}

type UseCase interface {
	// Load restores the tracked cities from storage and fetches a reading for each of them
	Load(ctx context.Context) error

	// AddCity fetches a reading for city and appends it, unless the city is already tracked
	AddCity(ctx context.Context, city entity.City) (*entity.WeatherReading, error)

	// RemoveCity drops the reading with the given id
	RemoveCity(ctx context.Context, id string) error

	// SetUnit replaces the active display unit
	SetUnit(unit entity.TemperatureUnit)

	// Snapshot returns a copy of the current state
	Snapshot() model.DashboardSnapshot

	// RefreshAll replaces every tracked reading with a freshly generated one
	RefreshAll(ctx context.Context, requestID string) error
}
