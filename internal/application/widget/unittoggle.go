package widget

import (
	"sync"

	"weather-dashboard/internal/domain/entity"
)

// UnitToggle is the celsius / fahrenheit switch
type UnitToggle struct {
	mu       sync.Mutex
	unit     entity.TemperatureUnit
	onChange func(unit entity.TemperatureUnit)
}

func NewUnitToggle(initial entity.TemperatureUnit, onChange func(unit entity.TemperatureUnit)) *UnitToggle {
	if onChange == nil {
		onChange = func(entity.TemperatureUnit) {}
	}
	return &UnitToggle{unit: initial, onChange: onChange}
}

// Click selects the option named value. The change handler runs synchronously, and only when the
// active unit actually changes.
func (t *UnitToggle) Click(value string) (bool, error) {
	unit, err := entity.ParseTemperatureUnit(value)
	if err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if unit == t.unit {
		return false, nil
	}
	t.unit = unit
	t.onChange(unit)
	return true, nil
}

func (t *UnitToggle) Unit() entity.TemperatureUnit {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unit
}
