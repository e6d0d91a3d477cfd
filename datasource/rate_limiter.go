package datasource

import (
	"context"
	"fmt"

	"weather-cli/models"

	"golang.org/x/time/rate"
)

// LimitedProvider wraps a Provider with a token-bucket limiter so the
// provider stack, not the call sites, owns API throttling. With a burst
// of one or more, a single invocation's call passes without waiting.
type LimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
	name     string
}

// NewLimitedProvider creates a rate limited provider.
// rps is the maximum requests per second allowed (can be fractional for
// less than 1 request per second), burst is the maximum burst size.
func NewLimitedProvider(provider Provider, rps float64, burst int) *LimitedProvider {
	return &LimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// CurrentWeather fetches current conditions, respecting rate limits
func (l *LimitedProvider) CurrentWeather(ctx context.Context, city string) (models.WeatherReport, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return models.WeatherReport{}, &NetworkError{Op: "rate limit wait", Err: err}
	}
	return l.provider.CurrentWeather(ctx, city)
}

// Forecast fetches a forecast, respecting rate limits
func (l *LimitedProvider) Forecast(ctx context.Context, city string) (models.ForecastReport, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return models.ForecastReport{}, &NetworkError{Op: "rate limit wait", Err: err}
	}
	return l.provider.Forecast(ctx, city)
}

// Name returns the provider name
func (l *LimitedProvider) Name() string {
	return l.name
}

var _ Provider = (*LimitedProvider)(nil)
