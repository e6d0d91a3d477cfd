package datasource

import (
	"context"

	"weather-cli/models"
)

// Provider is the interface for any source of weather data. The live
// OpenWeatherMap client and the demo generator both implement it, so the
// formatter and CLI never care which one was selected at startup.
type Provider interface {
	// CurrentWeather fetches current conditions for a city
	CurrentWeather(ctx context.Context, city string) (models.WeatherReport, error)

	// Forecast fetches a 5-day forecast for a city
	Forecast(ctx context.Context, city string) (models.ForecastReport, error)

	// Name returns the provider's name
	Name() string
}
