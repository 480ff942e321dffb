package widget

import (
	"testing"
	"time"

	"weather-dashboard/internal/domain/entity"
)

func sampleReading() entity.WeatherReading {
	observed := time.Date(2024, 3, 1, 14, 5, 0, 0, time.UTC)
	return entity.WeatherReading{
		ID:                 "paris_1709301900000_ab12cd34",
		City:               "Paris",
		Country:            "FR",
		TemperatureCelsius: 20,
		Condition:          entity.ConditionRainy,
		HumidityPercent:    80,
		WindSpeedKmh:       12,
		IconKey:            "cloud-rain",
		ObservedAtEpochMs:  observed.UnixMilli(),
	}
}

func TestRenderCard_units(t *testing.T) {
	tests := []struct {
		unit       entity.TemperatureUnit
		wantTemp   int
		wantSymbol string
	}{
		{unit: entity.Celsius, wantTemp: 20, wantSymbol: "°C"},
		{unit: entity.Fahrenheit, wantTemp: 68, wantSymbol: "°F"},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			card := RenderCard(sampleReading(), tt.unit, time.UTC)
			if card.Temperature != tt.wantTemp || card.UnitSymbol != tt.wantSymbol {
				t.Errorf("card = %d%s; want %d%s", card.Temperature, card.UnitSymbol, tt.wantTemp, tt.wantSymbol)
			}
		})
	}
}

func TestRenderCard_fields(t *testing.T) {
	reading := sampleReading()
	tokyo := time.FixedZone("JST", 9*60*60)

	card := RenderCard(reading, entity.Celsius, tokyo)

	if card.Time != "23:05" {
		t.Errorf("time = %q; want 23:05", card.Time)
	}
	if card.RemoveID != reading.ID || card.ID != reading.ID {
		t.Errorf("ids = %q, %q; want %q", card.ID, card.RemoveID, reading.ID)
	}
	if card.Glyph != "🌧️" || card.Palette != "rainy" {
		t.Errorf("glyph, palette = %q, %q", card.Glyph, card.Palette)
	}
	if card.Humidity != 80 || card.WindSpeed != 12 || card.City != "Paris" || card.Country != "FR" {
		t.Errorf("card = %+v", card)
	}
	if utc := RenderCard(reading, entity.Celsius, nil); utc.Time != "14:05" {
		t.Errorf("nil location time = %q; want 14:05", utc.Time)
	}
}

func TestRenderCard_unknownIconRendersNothing(t *testing.T) {
	reading := sampleReading()
	reading.IconKey = "tornado"
	reading.Condition = entity.Condition("windy")

	card := RenderCard(reading, entity.Celsius, time.UTC)

	if card.Glyph != "" {
		t.Errorf("glyph = %q; want empty", card.Glyph)
	}
	if card.Palette != defaultPalette {
		t.Errorf("palette = %q; want %q", card.Palette, defaultPalette)
	}
}

func TestResolveIcon_everyCondition(t *testing.T) {
	for _, condition := range entity.Conditions {
		if ResolveIcon(condition.IconKey()) == "" {
			t.Errorf("condition %q has no glyph", condition)
		}
	}
}

func TestRenderCards_keepsOrder(t *testing.T) {
	first, second := sampleReading(), sampleReading()
	second.ID = "other"

	cards := RenderCards([]entity.WeatherReading{first, second}, entity.Fahrenheit, time.UTC)

	if len(cards) != 2 || cards[0].ID != first.ID || cards[1].ID != "other" {
		t.Errorf("cards = %+v", cards)
	}
}
