package model

import "weather-dashboard/internal/domain/entity"

// AddCityDTO is the request body to track a new city
type AddCityDTO struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ChangeUnitDTO is the request body of the unit toggle
type ChangeUnitDTO struct {
	Unit string `json:"unit"`
}

// SearchInputDTO carries the current text of the search box
type SearchInputDTO struct {
	Query string `json:"query"`
}

// SearchPointerDTO describes a pointer-down event, either by region or by coordinates
type SearchPointerDTO struct {
	Target string   `json:"target"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
}

// SearchSelectDTO picks one entry of the dropdown
type SearchSelectDTO struct {
	Index int `json:"index"`
}

// DashboardSnapshot is a consistent copy of the dashboard state
type DashboardSnapshot struct {
	Loaded   bool                    `json:"loaded"`
	Unit     entity.TemperatureUnit  `json:"unit"`
	Readings []entity.WeatherReading `json:"readings"`
}
