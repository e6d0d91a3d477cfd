package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"weather-cli/config"
	"weather-cli/datasource"
	"weather-cli/format"

	"github.com/joho/godotenv"
)

const usage = `Usage: weather [flags] <city>

Flags:
  --forecast, -f          Show 5-day forecast instead of current weather
  --units, -u VALUE       Temperature units: metric or imperial (default metric)
  --api-key, -k KEY       OpenWeatherMap API key
  --config PATH           Path to optional YAML configuration file

Examples:
  weather London
  weather -f New York
  weather -u imperial Tokyo
  weather -k YOUR_API_KEY Paris`

func main() {
	// Load environment variables from .env file, if one exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Resolve(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s\n", err, usage)
		os.Exit(2)
	}

	provider := newProvider(cfg)

	// Bound the request by the configured timeout; SIGINT cancels the
	// in-flight request instead of leaving it to the process teardown.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	output, err := run(ctx, provider, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorMessage(err))
		os.Exit(1)
	}

	fmt.Print(output)
}

// newProvider selects the data source once at startup: live when an API
// key is configured, demo otherwise.
func newProvider(cfg *config.Config) datasource.Provider {
	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "⚠️  Warning: No API key provided. Using demo mode with sample data.")
		fmt.Fprintln(os.Stderr, "   To use real data, get a free API key from https://openweathermap.org/api")
		fmt.Fprintf(os.Stderr, "   Then set %s environment variable or use --api-key option\n", config.EnvAPIKey)
		return datasource.NewDemoProvider()
	}

	live := datasource.NewOpenWeatherMapProvider(cfg.APIKey, cfg.BaseURL, cfg.Units, cfg.Timeout)
	// OpenWeatherMap free tier allows 60 calls/minute; the burst covers
	// a single invocation without waiting.
	return datasource.NewLimitedProvider(live, 1.0, 5)
}

// run fetches and formats the output for the resolved mode
func run(ctx context.Context, provider datasource.Provider, cfg *config.Config) (string, error) {
	switch cfg.Mode {
	case config.ModeForecast:
		report, err := provider.Forecast(ctx, cfg.City)
		if err != nil {
			return "", err
		}
		return format.Forecast(report, cfg.Units), nil
	default:
		report, err := provider.CurrentWeather(ctx, cfg.City)
		if err != nil {
			return "", err
		}
		return format.Current(report, cfg.Units), nil
	}
}

// errorMessage renders a provider failure as one short line, without
// leaking internals the user cannot act on.
func errorMessage(err error) string {
	var (
		netErr   *datasource.NetworkError
		authErr  *datasource.AuthError
		nfErr    *datasource.NotFoundError
		rlErr    *datasource.RateLimitError
		parseErr *datasource.ParseError
		apiErr   *datasource.APIError
	)
	switch {
	case errors.As(err, &nfErr):
		return fmt.Sprintf("city %q not found, check the spelling", nfErr.City)
	case errors.As(err, &authErr):
		return "API key was rejected, check --api-key or " + config.EnvAPIKey
	case errors.As(err, &rlErr):
		return "rate limit exceeded, try again later"
	case errors.As(err, &netErr):
		return "could not reach the weather service, check your connection"
	case errors.As(err, &parseErr):
		return "the weather service returned an unexpected response"
	case errors.As(err, &apiErr):
		return apiErr.Error()
	}
	return err.Error()
}
