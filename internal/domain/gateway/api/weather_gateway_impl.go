package api

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"weather-dashboard/internal/domain/entity"
)

const unknownCountry = "Unknown"

// SimulationOptions controls the artificial latency and randomness of the simulated gateway
type SimulationOptions struct {
	// FetchMinLatency and FetchMaxLatency bound the uniformly drawn FetchReading delay
	FetchMinLatency time.Duration
	FetchMaxLatency time.Duration
	// SearchLatency is the fixed SearchCities delay
	SearchLatency time.Duration
	// Rand is the random source; nil uses a time seeded PCG
	Rand *rand.Rand
	// Now is the clock; nil uses time.Now
	Now func() time.Time
}

// DefaultSimulationOptions returns the production latencies
func DefaultSimulationOptions() SimulationOptions {
	return SimulationOptions{
		FetchMinLatency: 800 * time.Millisecond,
		FetchMaxLatency: 1600 * time.Millisecond,
		SearchLatency:   300 * time.Millisecond,
	}
}

// simulatedWeatherGateway generates random readings locally instead of calling a weather API
type simulatedWeatherGateway struct {
	options SimulationOptions
	mu      sync.Mutex
	rng     *rand.Rand
	now     func() time.Time
}

// NewSimulatedWeatherGateway creates a WeatherGateway backed by the local generator
func NewSimulatedWeatherGateway(options SimulationOptions) WeatherGateway {
	rng := options.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}
	if options.FetchMaxLatency < options.FetchMinLatency {
		options.FetchMaxLatency = options.FetchMinLatency
	}

	return &simulatedWeatherGateway{
		options: options,
		rng:     rng,
		now:     now,
	}
}

// SearchCities filters the directory by case-insensitive substring, keeping directory order
func (g *simulatedWeatherGateway) SearchCities(ctx context.Context, query string) ([]entity.City, error) {
	if err := sleep(ctx, g.options.SearchLatency); err != nil {
		return nil, err
	}

	if query == "" {
		return []entity.City{}, nil
	}

	needle := strings.ToLower(query)
	results := make([]entity.City, 0, maxSearchResults)
	for _, city := range directory {
		if strings.Contains(strings.ToLower(city.Name), needle) {
			results = append(results, city)
			if len(results) == maxSearchResults {
				break
			}
		}
	}

	return results, nil
}

// FetchReading simulates a network call and returns a randomized reading
func (g *simulatedWeatherGateway) FetchReading(ctx context.Context, cityName string, countryCode string) (*entity.WeatherReading, error) {
	if err := sleep(ctx, g.fetchLatency()); err != nil {
		return nil, err
	}

	if countryCode == "" {
		countryCode = unknownCountry
	}

	reading := g.generate(entity.City{Name: cityName, Country: countryCode})
	return &reading, nil
}

// generate draws a condition first, then the temperature from that condition's range
func (g *simulatedWeatherGateway) generate(city entity.City) entity.WeatherReading {
	g.mu.Lock()
	condition := entity.Conditions[g.rng.IntN(len(entity.Conditions))]
	tempRange, _ := condition.Range()
	temperature := tempRange.Min + g.rng.IntN(tempRange.Max-tempRange.Min+1)
	humidity := 30 + g.rng.IntN(71)
	wind := 5 + g.rng.IntN(31)
	g.mu.Unlock()

	observedAt := g.now()

	return entity.WeatherReading{
		ID:                 readingID(city.Name, observedAt),
		City:               city.Name,
		Country:            city.Country,
		TemperatureCelsius: temperature,
		Condition:          condition,
		HumidityPercent:    humidity,
		WindSpeedKmh:       wind,
		IconKey:            condition.IconKey(),
		ObservedAtEpochMs:  observedAt.UnixMilli(),
	}
}

func (g *simulatedWeatherGateway) fetchLatency() time.Duration {
	spread := g.options.FetchMaxLatency - g.options.FetchMinLatency
	if spread <= 0 {
		return g.options.FetchMinLatency
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.options.FetchMinLatency + time.Duration(g.rng.Int64N(int64(spread)))
}

// readingID builds "<city_slug>_<epoch ms>_<random suffix>"
func readingID(cityName string, observedAt time.Time) string {
	slug := strings.Join(strings.Fields(strings.ToLower(cityName)), "_")
	return fmt.Sprintf("%s_%d_%s", slug, observedAt.UnixMilli(), uuid.NewString()[:8])
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
