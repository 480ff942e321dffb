package entity

import "strings"

// City identifies a place by name and country code.
type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// SameAs reports whether both cities share the dashboard identity:
// case-insensitive name and exact country.
func (c City) SameAs(other City) bool {
	return strings.EqualFold(c.Name, other.Name) && c.Country == other.Country
}

func (c City) String() string {
	return c.Name + "/" + c.Country
}
