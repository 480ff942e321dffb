package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/notify"
	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"

	"go.uber.org/zap"
)

type dashboardUseCase struct {
	storageKey     string
	weatherGateway api.WeatherGateway
	storageGateway storage.StorageGateway
	notifier       notify.Notifier

	mu       sync.Mutex
	loaded   bool
	unit     entity.TemperatureUnit
	readings []entity.WeatherReading
	// skipped holds cities whose startup fetch failed. They stay persisted until a fetch succeeds.
	skipped []entity.City
}

func NewDashboardUseCase(storageKey string, weatherGateway api.WeatherGateway, storageGateway storage.StorageGateway, notifier notify.Notifier) UseCase {
	return &dashboardUseCase{
		storageKey:     storageKey,
		weatherGateway: weatherGateway,
		storageGateway: storageGateway,
		notifier:       notifier,
		unit:           entity.Celsius,
	}
}

// Load restores the persisted cities, falling back to the defaults, and fetches them in parallel
func (uc *dashboardUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	loaded := uc.loaded
	uc.mu.Unlock()
	if loaded {
		return ErrAlreadyLoaded
	}

	cities := uc.restoreCities(ctx)
	log.Info(msg.GetMessage("dashboard.load.start", len(cities)))

	results := uc.fetchAll(ctx, cities)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("dashboard load interrupted: %w", err)
	}

	readings := make([]entity.WeatherReading, 0, len(cities))
	var skipped []entity.City
	for i, result := range results {
		if result.err != nil {
			log.Warn(msg.GetMessage("dashboard.load.failed", cities[i]), zap.Error(result.err))
			uc.notifier.Notify(model.NotificationError, msg.GetMessage("dashboard.load.failed", cities[i].Name))
			skipped = append(skipped, cities[i])
			continue
		}
		readings = append(readings, *result.reading)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.loaded {
		return ErrAlreadyLoaded
	}

	uc.readings = readings
	uc.skipped = skipped
	uc.loaded = true
	uc.persistLocked(ctx)

	log.Info(msg.GetMessage("dashboard.load.done", len(readings), len(cities)))
	return nil
}

// restoreCities reads the tracked cities from storage; any failure falls back to the defaults
func (uc *dashboardUseCase) restoreCities(ctx context.Context) []entity.City {
	raw, found, err := uc.storageGateway.Get(ctx, uc.storageKey)
	if err != nil {
		log.Warn(msg.GetMessage("dashboard.storage.read-failed", err))
		return slices.Clone(DefaultCities)
	}
	if !found {
		return slices.Clone(DefaultCities)
	}

	var cities []entity.City
	if err := json.Unmarshal([]byte(raw), &cities); err != nil {
		log.Warn(msg.GetMessage("dashboard.storage.parse-failed", err))
		return slices.Clone(DefaultCities)
	}
	if cities == nil {
		log.Warn(msg.GetMessage("dashboard.storage.parse-failed", errors.New("stored value is not a list")))
		return slices.Clone(DefaultCities)
	}

	return cities
}

type fetchResult struct {
	reading *entity.WeatherReading
	err     error
}

// fetchAll fetches a reading for every city concurrently, keeping the input order in the result
func (uc *dashboardUseCase) fetchAll(ctx context.Context, cities []entity.City) []fetchResult {
	var wg sync.WaitGroup
	results := make([]fetchResult, len(cities))

	for i, city := range cities {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reading, err := uc.weatherGateway.FetchReading(ctx, city.Name, city.Country)
			results[i] = fetchResult{reading: reading, err: err}
		}()
	}

	wg.Wait()
	return results
}

// AddCity fetches and appends a reading for city unless it is already tracked
func (uc *dashboardUseCase) AddCity(ctx context.Context, city entity.City) (*entity.WeatherReading, error) {
	uc.mu.Lock()
	if !uc.loaded {
		uc.mu.Unlock()
		return nil, ErrNotLoaded
	}
	duplicate := uc.indexOfCityLocked(city) >= 0
	uc.mu.Unlock()

	if duplicate {
		uc.notifier.Notify(model.NotificationInfo, msg.GetMessage("dashboard.city.duplicate", city.Name))
		return nil, ErrDuplicateCity
	}

	reading, err := uc.weatherGateway.FetchReading(ctx, city.Name, city.Country)
	if err != nil {
		uc.notifier.Notify(model.NotificationError, msg.GetMessage("dashboard.city.add-failed", city.Name))
		return nil, fmt.Errorf("failed to fetch weather for %s: %w", city, err)
	}

	uc.mu.Lock()
	// another request may have added the same city while this one was fetching
	if uc.indexOfCityLocked(city) >= 0 || uc.indexOfCityLocked(reading.Identity()) >= 0 {
		uc.mu.Unlock()
		uc.notifier.Notify(model.NotificationInfo, msg.GetMessage("dashboard.city.duplicate", city.Name))
		return nil, ErrDuplicateCity
	}
	uc.readings = append(uc.readings, *reading)
	uc.dropSkippedLocked(city)
	uc.dropSkippedLocked(reading.Identity())
	uc.persistLocked(ctx)
	uc.mu.Unlock()

	uc.notifier.Notify(model.NotificationSuccess, msg.GetMessage("dashboard.city.added", reading.City))
	return reading, nil
}

// RemoveCity drops the reading with the given id; an unknown id changes nothing
func (uc *dashboardUseCase) RemoveCity(ctx context.Context, id string) error {
	uc.mu.Lock()
	if !uc.loaded {
		uc.mu.Unlock()
		return ErrNotLoaded
	}

	index := slices.IndexFunc(uc.readings, func(r entity.WeatherReading) bool { return r.ID == id })
	if index < 0 {
		uc.mu.Unlock()
		return ErrReadingNotFound
	}

	uc.readings = slices.Delete(uc.readings, index, index+1)
	uc.persistLocked(ctx)
	uc.mu.Unlock()

	uc.notifier.Notify(model.NotificationSuccess, msg.GetMessage("dashboard.city.removed"))
	return nil
}

// SetUnit is the unit toggle's change handler
func (uc *dashboardUseCase) SetUnit(unit entity.TemperatureUnit) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.unit = unit
}

func (uc *dashboardUseCase) Snapshot() model.DashboardSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return model.DashboardSnapshot{
		Loaded:   uc.loaded,
		Unit:     uc.unit,
		Readings: slices.Clone(uc.readings),
	}
}

// RefreshAll regenerates every tracked reading; a city whose fetch fails keeps its previous reading
func (uc *dashboardUseCase) RefreshAll(ctx context.Context, requestID string) error {
	uc.mu.Lock()
	if !uc.loaded {
		uc.mu.Unlock()
		return ErrNotLoaded
	}
	current := slices.Clone(uc.readings)
	retry := slices.Clone(uc.skipped)
	uc.mu.Unlock()

	total := len(current) + len(retry)
	log.Info(msg.GetMessage("dashboard.refresh.start", total, requestID), zap.String("request_id", requestID))

	cities := make([]entity.City, 0, total)
	for _, reading := range current {
		cities = append(cities, reading.Identity())
	}
	cities = append(cities, retry...)
	results := uc.fetchAll(ctx, cities)

	uc.mu.Lock()
	refreshed := 0
	for i, result := range results {
		if result.err != nil {
			log.Warn(msg.GetMessage("dashboard.refresh.failed", cities[i], requestID, result.err),
				zap.String("request_id", requestID))
			continue
		}

		if i >= len(current) {
			// a city skipped at startup is tracked again unless it was re-added meanwhile
			if slices.ContainsFunc(uc.skipped, cities[i].SameAs) {
				uc.dropSkippedLocked(cities[i])
				uc.readings = append(uc.readings, *result.reading)
				refreshed++
			}
			continue
		}

		// the reading may have been removed while the refresh was running
		index := slices.IndexFunc(uc.readings, func(r entity.WeatherReading) bool { return r.ID == current[i].ID })
		if index < 0 {
			continue
		}
		uc.readings[index] = *result.reading
		refreshed++
	}
	if refreshed > 0 {
		uc.persistLocked(ctx)
	}
	uc.mu.Unlock()

	log.Info(msg.GetMessage("dashboard.refresh.done", refreshed, total, requestID), zap.String("request_id", requestID))
	return nil
}

func (uc *dashboardUseCase) dropSkippedLocked(city entity.City) {
	uc.skipped = slices.DeleteFunc(uc.skipped, city.SameAs)
}

func (uc *dashboardUseCase) indexOfCityLocked(city entity.City) int {
	return slices.IndexFunc(uc.readings, func(r entity.WeatherReading) bool {
		return r.Identity().SameAs(city)
	})
}

// persistLocked writes the tracked identities in display order, followed by the cities skipped at
// startup. Storage is best effort: a failed write is logged and the in-memory state stays authoritative.
func (uc *dashboardUseCase) persistLocked(ctx context.Context) {
	cities := make([]entity.City, 0, len(uc.readings)+len(uc.skipped))
	for _, reading := range uc.readings {
		cities = append(cities, reading.Identity())
	}
	cities = append(cities, uc.skipped...)

	payload, err := json.Marshal(cities)
	if err != nil {
		log.Error(msg.GetMessage("dashboard.storage.write-failed", err))
		return
	}

	if err := uc.storageGateway.Set(context.WithoutCancel(ctx), uc.storageKey, string(payload)); err != nil {
		log.Error(msg.GetMessage("dashboard.storage.write-failed", err))
	}
}
