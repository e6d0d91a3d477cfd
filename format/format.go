// Package format renders weather records into the textual layout printed
// to the user. All functions are pure: record + units in, string out.
package format

import (
	"fmt"
	"strings"

	"weather-cli/models"
)

const demoNote = "\n🔧 DEMO MODE - Using sample data"

// Current renders a current-conditions report
func Current(r models.WeatherReport, units models.Units) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n🌤️  Current Weather for %s, %s\n", r.City, r.Country)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "🌡️  Temperature: %.1f%s (feels like %.1f%s)\n",
		r.Temperature, units.TempSuffix(), r.FeelsLike, units.TempSuffix())
	fmt.Fprintf(&b, "☁️  Condition: %s\n", titleCase(r.Description))
	fmt.Fprintf(&b, "💧 Humidity: %d%%\n", r.Humidity)
	fmt.Fprintf(&b, "🔽 Pressure: %d hPa\n", r.Pressure)
	fmt.Fprintf(&b, "💨 Wind: %.1f %s\n", r.WindSpeed, units.SpeedSuffix())
	fmt.Fprintf(&b, "👁️  Visibility: %d meters", r.Visibility)
	if r.Demo {
		b.WriteString(demoNote)
	}
	b.WriteString("\n")

	return b.String()
}

// Forecast renders a 5-day forecast report
func Forecast(r models.ForecastReport, units models.Units) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n📅 5-Day Weather Forecast for %s, %s\n", r.City, r.Country)
	b.WriteString(strings.Repeat("=", 60))
	if r.Demo {
		b.WriteString(demoNote)
	}
	b.WriteString("\n")

	for _, e := range r.Entries {
		fmt.Fprintf(&b, "\n📆 %s, %s\n", e.Date.Weekday(), e.Date.Format("2006-01-02"))
		fmt.Fprintf(&b, "   🌡️  %.1f%s\n", e.Temperature, units.TempSuffix())
		fmt.Fprintf(&b, "   ☁️  %s\n", titleCase(e.Description))
		fmt.Fprintf(&b, "   💧 %d%% humidity\n", e.Humidity)
	}

	return b.String()
}

// titleCase capitalizes each word of a condition description
// ("clear sky" -> "Clear Sky")
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}
