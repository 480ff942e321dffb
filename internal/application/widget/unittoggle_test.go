package widget

import (
	"testing"

	"weather-dashboard/internal/domain/entity"
)

func TestUnitToggle_Click(t *testing.T) {
	var emitted []entity.TemperatureUnit
	toggle := NewUnitToggle(entity.Celsius, func(unit entity.TemperatureUnit) {
		emitted = append(emitted, unit)
	})

	tests := []struct {
		click       string
		wantChanged bool
		wantUnit    entity.TemperatureUnit
		wantEmitted int
	}{
		{click: "celsius", wantChanged: false, wantUnit: entity.Celsius, wantEmitted: 0},
		{click: "fahrenheit", wantChanged: true, wantUnit: entity.Fahrenheit, wantEmitted: 1},
		{click: "fahrenheit", wantChanged: false, wantUnit: entity.Fahrenheit, wantEmitted: 1},
		{click: "celsius", wantChanged: true, wantUnit: entity.Celsius, wantEmitted: 2},
	}

	for _, tt := range tests {
		changed, err := toggle.Click(tt.click)
		if err != nil {
			t.Fatalf("Click(%q) error = %v", tt.click, err)
		}
		if changed != tt.wantChanged || toggle.Unit() != tt.wantUnit || len(emitted) != tt.wantEmitted {
			t.Errorf("Click(%q) = %v, unit %q, %d emits; want %v, %q, %d",
				tt.click, changed, toggle.Unit(), len(emitted), tt.wantChanged, tt.wantUnit, tt.wantEmitted)
		}
	}
}

func TestUnitToggle_rejectsUnknownUnit(t *testing.T) {
	toggle := NewUnitToggle(entity.Celsius, func(entity.TemperatureUnit) {
		t.Error("change emitted for an unknown unit")
	})

	if _, err := toggle.Click("kelvin"); err == nil {
		t.Error("Click(kelvin) error = nil")
	}
	if toggle.Unit() != entity.Celsius {
		t.Errorf("unit = %q; want celsius", toggle.Unit())
	}
}
