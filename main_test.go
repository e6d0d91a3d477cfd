package main

import (
	"context"
	"testing"

	"weather-cli/config"
	"weather-cli/datasource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemoCurrent(t *testing.T) {
	cfg, err := config.Resolve([]string{"London"}, func(string) string { return "" })
	require.NoError(t, err)

	out, err := run(context.Background(), datasource.NewDemoProvider(), cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "London")
	assert.Contains(t, out, "°C")
	assert.Contains(t, out, "DEMO MODE")
}

func TestRunDemoForecastImperial(t *testing.T) {
	cfg, err := config.Resolve([]string{"-f", "-u", "imperial", "Tokyo"}, func(string) string { return "" })
	require.NoError(t, err)

	out, err := run(context.Background(), datasource.NewDemoProvider(), cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "5-Day Weather Forecast for Tokyo")
	assert.Contains(t, out, "°F")
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "not found", err: &datasource.NotFoundError{City: "Atlantis"}, want: "Atlantis"},
		{name: "auth", err: &datasource.AuthError{}, want: config.EnvAPIKey},
		{name: "rate limit", err: &datasource.RateLimitError{}, want: "rate limit"},
		{name: "network", err: &datasource.NetworkError{Op: "request"}, want: "connection"},
		{name: "parse", err: &datasource.ParseError{Reason: "invalid JSON"}, want: "unexpected response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, errorMessage(tt.err), tt.want)
		})
	}
}
