package entity

import (
	"fmt"
	"math"
)

// TemperatureUnit is the display unit for temperatures.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

// ParseTemperatureUnit validates a unit name.
func ParseTemperatureUnit(value string) (TemperatureUnit, error) {
	switch TemperatureUnit(value) {
	case Celsius, Fahrenheit:
		return TemperatureUnit(value), nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", value)
	}
}

// Symbol returns the short display suffix of the unit.
func (u TemperatureUnit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// CelsiusToFahrenheit converts and rounds half away from zero.
func CelsiusToFahrenheit(celsius int) int {
	return int(math.Round(float64(celsius)*9/5 + 32))
}

// FahrenheitToCelsius converts and rounds half away from zero.
func FahrenheitToCelsius(fahrenheit int) int {
	return int(math.Round(float64(fahrenheit-32) * 5 / 9))
}

// Display returns the celsius value expressed in unit.
func (u TemperatureUnit) Display(celsius int) int {
	if u == Fahrenheit {
		return CelsiusToFahrenheit(celsius)
	}
	return celsius
}
