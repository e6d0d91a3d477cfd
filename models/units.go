package models

import "fmt"

// Units selects the display convention for temperatures and wind speeds.
// It also maps to the provider's "units" query parameter, so numeric values
// arrive already converted and only the suffixes change at format time.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// ParseUnits validates a units string from user input
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case UnitsMetric, UnitsImperial:
		return Units(s), nil
	}
	return "", fmt.Errorf("unknown units %q (expected metric or imperial)", s)
}

// TempSuffix returns the temperature suffix for display
func (u Units) TempSuffix() string {
	if u == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// SpeedSuffix returns the wind speed suffix for display
func (u Units) SpeedSuffix() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

// QueryValue returns the value sent as the provider's "units" parameter
func (u Units) QueryValue() string {
	return string(u)
}
