package format

import (
	"strings"
	"testing"
	"time"

	"weather-cli/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleReport = models.WeatherReport{
	City:        "London",
	Country:     "GB",
	Temperature: 18.3,
	FeelsLike:   17.9,
	Description: "light rain",
	Humidity:    72,
	Pressure:    1011,
	WindSpeed:   4.6,
	Visibility:  10000,
}

func sampleForecast() models.ForecastReport {
	report := models.ForecastReport{City: "Tokyo", Country: "JP"}
	day := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < models.ForecastDays; i++ {
		report.Entries = append(report.Entries, models.ForecastEntry{
			Date:        day.AddDate(0, 0, i),
			Temperature: 20 + float64(i),
			Description: "scattered clouds",
			Humidity:    60,
		})
	}
	return report
}

func TestCurrentMetricLayout(t *testing.T) {
	out := Current(sampleReport, models.UnitsMetric)

	assert.Contains(t, out, "Current Weather for London, GB")
	assert.Contains(t, out, "Temperature: 18.3°C (feels like 17.9°C)")
	assert.Contains(t, out, "Condition: Light Rain")
	assert.Contains(t, out, "Humidity: 72%")
	assert.Contains(t, out, "Pressure: 1011 hPa")
	assert.Contains(t, out, "Wind: 4.6 m/s")
	assert.Contains(t, out, "Visibility: 10000 meters")
	assert.NotContains(t, out, "DEMO MODE")
}

func TestCurrentImperialSuffixes(t *testing.T) {
	tokyo := sampleReport
	tokyo.City = "Tokyo"
	tokyo.Country = "JP"

	out := Current(tokyo, models.UnitsImperial)

	assert.Contains(t, out, "Tokyo")
	assert.Contains(t, out, "°F")
	assert.Contains(t, out, "mph")
	assert.NotContains(t, out, "°C")
	assert.NotContains(t, out, "m/s")
}

func TestCurrentUnitsChangeSuffixesOnly(t *testing.T) {
	metric := Current(sampleReport, models.UnitsMetric)
	imperial := Current(sampleReport, models.UnitsImperial)

	// Same fields on the same lines, only the unit suffixes differ
	swapped := strings.ReplaceAll(metric, "°C", "°F")
	swapped = strings.ReplaceAll(swapped, "m/s", "mph")
	assert.Equal(t, swapped, imperial)
}

func TestCurrentDeterministic(t *testing.T) {
	assert.Equal(t,
		Current(sampleReport, models.UnitsMetric),
		Current(sampleReport, models.UnitsMetric))
}

func TestCurrentDemoNote(t *testing.T) {
	demo := sampleReport
	demo.Demo = true

	out := Current(demo, models.UnitsMetric)
	assert.Contains(t, out, "DEMO MODE - Using sample data")
}

func TestForecastLayout(t *testing.T) {
	report := sampleForecast()
	out := Forecast(report, models.UnitsMetric)

	assert.Contains(t, out, "5-Day Weather Forecast for Tokyo, JP")
	assert.Equal(t, models.ForecastDays, strings.Count(out, "📆"))
	assert.Contains(t, out, "Tuesday, 2026-09-01")
	assert.Contains(t, out, "20.0°C")
	assert.Contains(t, out, "Scattered Clouds")
	assert.Contains(t, out, "60% humidity")
	assert.NotContains(t, out, "DEMO MODE")

	// Entries appear in chronological order
	first := strings.Index(out, "2026-09-01")
	last := strings.Index(out, "2026-09-05")
	require.Greater(t, last, first)
}

func TestForecastImperialAndDemo(t *testing.T) {
	report := sampleForecast()
	report.Demo = true

	out := Forecast(report, models.UnitsImperial)

	assert.Contains(t, out, "°F")
	assert.NotContains(t, out, "°C")
	assert.Contains(t, out, "DEMO MODE - Using sample data")
}

func TestForecastInputNotMutated(t *testing.T) {
	report := sampleForecast()
	before := make([]models.ForecastEntry, len(report.Entries))
	copy(before, report.Entries)

	Forecast(report, models.UnitsMetric)

	assert.Equal(t, before, report.Entries)
}
