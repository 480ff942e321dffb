package widget

import (
	"time"

	"weather-dashboard/internal/domain/entity"
)

var icons = map[string]string{
	"sun":             "☀️",
	"cloud":           "☁️",
	"cloud-rain":      "🌧️",
	"cloud-snow":      "🌨️",
	"cloud-lightning": "⛈️",
}

var palettes = map[entity.Condition]string{
	entity.ConditionSunny:  "sunny",
	entity.ConditionCloudy: "cloudy",
	entity.ConditionRainy:  "rainy",
	entity.ConditionSnowy:  "snowy",
	entity.ConditionStormy: "stormy",
}

const defaultPalette = "rainy"

// ResolveIcon maps an icon key to its glyph; unknown keys render nothing
func ResolveIcon(key string) string {
	return icons[key]
}

// CardView is everything a weather card shows
type CardView struct {
	ID          string           `json:"id"`
	City        string           `json:"city"`
	Country     string           `json:"country"`
	Temperature int              `json:"temperature"`
	UnitSymbol  string           `json:"unitSymbol"`
	Condition   entity.Condition `json:"condition"`
	Palette     string           `json:"palette"`
	Humidity    int              `json:"humidity"`
	WindSpeed   int              `json:"windSpeed"`
	IconKey     string           `json:"icon"`
	Glyph       string           `json:"glyph"`
	Time        string           `json:"time"`
	// RemoveID is what the remove control sends back
	RemoveID string `json:"removeId"`
}

// RenderCard renders one reading in the given unit; a nil location means UTC
func RenderCard(reading entity.WeatherReading, unit entity.TemperatureUnit, location *time.Location) CardView {
	if location == nil {
		location = time.UTC
	}

	palette, ok := palettes[reading.Condition]
	if !ok {
		palette = defaultPalette
	}

	return CardView{
		ID:          reading.ID,
		City:        reading.City,
		Country:     reading.Country,
		Temperature: unit.Display(reading.TemperatureCelsius),
		UnitSymbol:  unit.Symbol(),
		Condition:   reading.Condition,
		Palette:     palette,
		Humidity:    reading.HumidityPercent,
		WindSpeed:   reading.WindSpeedKmh,
		IconKey:     reading.IconKey,
		Glyph:       ResolveIcon(reading.IconKey),
		Time:        time.UnixMilli(reading.ObservedAtEpochMs).In(location).Format("15:04"),
		RemoveID:    reading.ID,
	}
}

// RenderCards renders readings in order
func RenderCards(readings []entity.WeatherReading, unit entity.TemperatureUnit, location *time.Location) []CardView {
	cards := make([]CardView, len(readings))
	for i, reading := range readings {
		cards[i] = RenderCard(reading, unit, location)
	}
	return cards
}
