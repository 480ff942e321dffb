package api

import "weather-dashboard/internal/domain/entity"

// maxSearchResults caps the autocomplete result list
const maxSearchResults = 5

// directory is the fixed list of cities eligible for autocomplete
var directory = []entity.City{
	{Name: "New York", Country: "US"},
	{Name: "London", Country: "UK"},
	{Name: "Tokyo", Country: "JP"},
	{Name: "Paris", Country: "FR"},
	{Name: "Sydney", Country: "AU"},
	{Name: "Singapore", Country: "SG"},
	{Name: "Berlin", Country: "DE"},
	{Name: "Toronto", Country: "CA"},
	{Name: "Dubai", Country: "AE"},
	{Name: "San Francisco", Country: "US"},
	{Name: "Rome", Country: "IT"},
	{Name: "Bangkok", Country: "TH"},
	{Name: "Mumbai", Country: "IN"},
	{Name: "Stockholm", Country: "SE"},
	{Name: "Madrid", Country: "ES"},
	{Name: "Seoul", Country: "KR"},
	{Name: "Barcelona", Country: "ES"},
	{Name: "Hong Kong", Country: "HK"},
	{Name: "Amsterdam", Country: "NL"},
	{Name: "Rio de Janeiro", Country: "BR"},
}
