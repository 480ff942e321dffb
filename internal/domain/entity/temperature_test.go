package entity

import "testing"

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		celsius int
		want    int
	}{
		{0, 32},
		{20, 68},
		{-40, -40},
		{100, 212},
		{-10, 14},
		{35, 95},
		// 1.8*-18+32 = -0.4
		{-18, 0},
	}
	for _, tt := range tests {
		if got := CelsiusToFahrenheit(tt.celsius); got != tt.want {
			t.Errorf("CelsiusToFahrenheit(%d) = %d; want %d", tt.celsius, got, tt.want)
		}
	}
}

func TestFahrenheitToCelsius(t *testing.T) {
	tests := []struct {
		fahrenheit int
		want       int
	}{
		{32, 0},
		{68, 20},
		{-40, -40},
		{212, 100},
		// (33-32)*5/9 = 0.55
		{33, 1},
		// (23-32)*5/9 = -5
		{23, -5},
	}
	for _, tt := range tests {
		if got := FahrenheitToCelsius(tt.fahrenheit); got != tt.want {
			t.Errorf("FahrenheitToCelsius(%d) = %d; want %d", tt.fahrenheit, got, tt.want)
		}
	}
}

func TestConversionRoundTripIsBounded(t *testing.T) {
	for value := -100; value <= 150; value++ {
		if got := CelsiusToFahrenheit(FahrenheitToCelsius(value)); abs(got-value) > 1 {
			t.Errorf("CelsiusToFahrenheit(FahrenheitToCelsius(%d)) = %d; off by more than 1", value, got)
		}
		if got := FahrenheitToCelsius(CelsiusToFahrenheit(value)); abs(got-value) > 1 {
			t.Errorf("FahrenheitToCelsius(CelsiusToFahrenheit(%d)) = %d; off by more than 1", value, got)
		}
	}
}

func TestTemperatureUnit(t *testing.T) {
	if got := Fahrenheit.Display(20); got != 68 {
		t.Errorf("Fahrenheit.Display(20) = %d; want 68", got)
	}
	if got := Celsius.Display(20); got != 20 {
		t.Errorf("Celsius.Display(20) = %d; want 20", got)
	}
	if Celsius.Symbol() != "°C" || Fahrenheit.Symbol() != "°F" {
		t.Errorf("symbols = %q, %q", Celsius.Symbol(), Fahrenheit.Symbol())
	}

	if _, err := ParseTemperatureUnit("kelvin"); err == nil {
		t.Error("ParseTemperatureUnit(kelvin) = nil error; want error")
	}
	if u, err := ParseTemperatureUnit("fahrenheit"); err != nil || u != Fahrenheit {
		t.Errorf("ParseTemperatureUnit(fahrenheit) = %q, %v", u, err)
	}
}

func TestCitySameAs(t *testing.T) {
	london := City{Name: "London", Country: "UK"}

	if !london.SameAs(City{Name: "LONDON", Country: "UK"}) {
		t.Error("city names should compare case-insensitively")
	}
	if london.SameAs(City{Name: "London", Country: "CA"}) {
		t.Error("different country must not be the same city")
	}
	if london.SameAs(City{Name: "London", Country: "uk"}) {
		t.Error("country comparison must be exact")
	}
}

func TestConditionTables(t *testing.T) {
	for _, c := range Conditions {
		if _, ok := c.Range(); !ok {
			t.Errorf("condition %q has no temperature range", c)
		}
		if c.IconKey() == "" {
			t.Errorf("condition %q has no icon key", c)
		}
	}
	if Condition("foggy").IconKey() != "" {
		t.Error("unknown condition should have no icon key")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
