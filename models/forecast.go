package models

import (
	"time"
)

// ForecastEntry represents one day of the forecast
type ForecastEntry struct {
	Date        time.Time `json:"date"`        // day this entry is for
	Temperature float64   `json:"temperature"` // representative (midday) temperature
	Description string    `json:"description"` // short text description
	Humidity    int       `json:"humidity"`    // percentage
}

// ForecastReport represents a 5-day forecast for a city.
// Entries are ordered chronologically, one per day.
type ForecastReport struct {
	City    string          `json:"city"`
	Country string          `json:"country"`
	Entries []ForecastEntry `json:"entries"`
	Demo    bool            `json:"demo"`
}

// ForecastDays is the number of daily entries every ForecastReport carries.
const ForecastDays = 5
