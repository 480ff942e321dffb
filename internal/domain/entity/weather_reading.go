package entity

// Condition is the simulated sky state of a reading.
type Condition string

const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionRainy  Condition = "rainy"
	ConditionSnowy  Condition = "snowy"
	ConditionStormy Condition = "stormy"
)

// Conditions lists every condition in generator order.
var Conditions = []Condition{ConditionSunny, ConditionCloudy, ConditionRainy, ConditionSnowy, ConditionStormy}

// TemperatureRange is an inclusive range in degrees Celsius.
type TemperatureRange struct {
	Min int
	Max int
}

// Contains reports whether value lies inside the inclusive range.
func (r TemperatureRange) Contains(value int) bool {
	return value >= r.Min && value <= r.Max
}

var conditionRanges = map[Condition]TemperatureRange{
	ConditionSunny:  {Min: 25, Max: 35},
	ConditionCloudy: {Min: 15, Max: 25},
	ConditionRainy:  {Min: 10, Max: 20},
	ConditionSnowy:  {Min: -10, Max: 5},
	ConditionStormy: {Min: 10, Max: 20},
}

var conditionIcons = map[Condition]string{
	ConditionSunny:  "sun",
	ConditionCloudy: "cloud",
	ConditionRainy:  "cloud-rain",
	ConditionSnowy:  "cloud-snow",
	ConditionStormy: "cloud-lightning",
}

// Range returns the temperature range a reading with this condition is drawn from.
func (c Condition) Range() (TemperatureRange, bool) {
	r, ok := conditionRanges[c]
	return r, ok
}

// IconKey returns the icon key associated with the condition, or "" when unknown.
func (c Condition) IconKey() string {
	return conditionIcons[c]
}

// WeatherReading is one generated snapshot of simulated weather for a city.
type WeatherReading struct {
	ID                 string    `json:"id"`
	City               string    `json:"city"`
	Country            string    `json:"country"`
	TemperatureCelsius int       `json:"temperature"`
	Condition          Condition `json:"condition"`
	HumidityPercent    int       `json:"humidity"`
	WindSpeedKmh       int       `json:"windSpeed"`
	IconKey            string    `json:"icon"`
	ObservedAtEpochMs  int64     `json:"timestamp"`
}

// Identity returns the city the reading belongs to.
func (r WeatherReading) Identity() City {
	return City{Name: r.City, Country: r.Country}
}
