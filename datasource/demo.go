package datasource

import (
	"context"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"weather-cli/models"
)

// demoCountry marks demo records the way the live API marks real ones
const demoCountry = "DEMO"

var demoConditions = []string{
	"clear sky",
	"few clouds",
	"scattered clouds",
	"light rain",
	"overcast clouds",
	"sunny",
	"partly cloudy",
}

// DemoProvider synthesizes sample weather data without network access.
// Values are seeded from the city name, so repeated lookups for the same
// city always produce the same conditions.
type DemoProvider struct {
	now func() time.Time
}

// NewDemoProvider creates a demo data provider
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{now: time.Now}
}

// Name returns the provider name
func (p *DemoProvider) Name() string {
	return "Demo"
}

// cityRand builds a deterministic source from the city name
func cityRand(city string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(city))))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// titleCity normalizes the city for display, matching how the live API
// echoes names back ("london" -> "London")
func titleCity(city string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(city)))
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

// CurrentWeather returns plausible current conditions for a city
func (p *DemoProvider) CurrentWeather(_ context.Context, city string) (models.WeatherReport, error) {
	r := cityRand(city)
	temp := 5 + r.Float64()*25 // 5..30
	return models.WeatherReport{
		City:        titleCity(city),
		Country:     demoCountry,
		Temperature: round1(temp),
		FeelsLike:   round1(temp + r.Float64()*4 - 2),
		Description: demoConditions[r.Intn(len(demoConditions))],
		Humidity:    40 + r.Intn(50),
		Pressure:    995 + r.Intn(40),
		WindSpeed:   round1(r.Float64() * 8),
		Visibility:  6000 + r.Intn(5)*1000,
		Demo:        true,
	}, nil
}

// Forecast returns a 5-day forecast starting tomorrow
func (p *DemoProvider) Forecast(_ context.Context, city string) (models.ForecastReport, error) {
	r := cityRand(city)
	report := models.ForecastReport{
		City:    titleCity(city),
		Country: demoCountry,
		Demo:    true,
	}

	today := p.now().Truncate(24 * time.Hour)
	for i := 0; i < models.ForecastDays; i++ {
		report.Entries = append(report.Entries, models.ForecastEntry{
			Date:        today.AddDate(0, 0, i+1),
			Temperature: round1(8 + r.Float64()*20),
			Description: demoConditions[r.Intn(len(demoConditions))],
			Humidity:    40 + r.Intn(50),
		})
	}
	return report, nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

var _ Provider = (*DemoProvider)(nil)
