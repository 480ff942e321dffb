package api

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

// WeatherGateway defines the weather data source used by the dashboard
type WeatherGateway interface {
	// SearchCities returns up to five directory cities whose name contains query
	SearchCities(ctx context.Context, query string) ([]entity.City, error)

	// FetchReading produces a current weather reading for a city
	// countryCode: empty means the country is unknown
	FetchReading(ctx context.Context, cityName string, countryCode string) (*entity.WeatherReading, error)
}
