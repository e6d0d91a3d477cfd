package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"weather-cli/models"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the OpenWeatherMap API root used when no config file
// overrides it.
const DefaultBaseURL = "http://api.openweathermap.org/data/2.5"

// DefaultTimeout bounds every HTTP request
const DefaultTimeout = 10 * time.Second

// EnvAPIKey is the environment variable consulted when --api-key is absent
const EnvAPIKey = "OPENWEATHER_API_KEY"

// Mode selects which endpoint an invocation hits
type Mode string

const (
	ModeCurrent  Mode = "current"
	ModeForecast Mode = "forecast"
)

// Config is the fully resolved configuration for one invocation
type Config struct {
	City    string
	Mode    Mode
	Units   models.Units
	APIKey  string // empty means demo mode
	BaseURL string
	Timeout time.Duration
}

// ConfigError indicates invalid user input (bad flags, empty city,
// unknown units). The CLI renders it with usage and exits 2.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error { return e.Err }

// fileConfig is the optional YAML configuration file shape
type fileConfig struct {
	API struct {
		Key            string `yaml:"key"`
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Units string `yaml:"units"`
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// Resolve parses command-line arguments and the environment into a Config.
// Precedence per setting is flag > environment > config file > default.
// getenv is injected so callers outside tests pass os.Getenv; nothing
// downstream of Resolve reads the environment.
func Resolve(args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		forecast   bool
		units      string
		apiKey     string
		configPath string
	)
	fs.BoolVar(&forecast, "forecast", false, "Show 5-day forecast instead of current weather")
	fs.BoolVar(&forecast, "f", false, "Shorthand for -forecast")
	fs.StringVar(&units, "units", "", "Temperature units: metric or imperial (default metric)")
	fs.StringVar(&units, "u", "", "Shorthand for -units")
	fs.StringVar(&apiKey, "api-key", "", "OpenWeatherMap API key")
	fs.StringVar(&apiKey, "k", "", "Shorthand for -api-key")
	fs.StringVar(&configPath, "config", "", "Path to optional YAML configuration file")

	if err := fs.Parse(args); err != nil {
		return nil, &ConfigError{Message: "invalid arguments", Err: err}
	}

	// Remaining positional arguments form the city name, so multi-word
	// cities work without quoting. A stray flag after the city is a
	// user mistake, not part of the name.
	rest := fs.Args()
	for _, a := range rest {
		if strings.HasPrefix(a, "-") {
			return nil, &ConfigError{Message: fmt.Sprintf("flag %q must come before the city name", a)}
		}
	}
	city := strings.TrimSpace(strings.Join(rest, " "))
	if city == "" {
		return nil, &ConfigError{Message: "city is required"}
	}

	var fc *fileConfig
	if configPath != "" {
		loaded, err := loadFile(configPath)
		if err != nil {
			return nil, &ConfigError{Message: fmt.Sprintf("cannot load config file %s", configPath), Err: err}
		}
		fc = loaded
	}

	cfg := &Config{
		City:    city,
		Mode:    ModeCurrent,
		Units:   models.UnitsMetric,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
	if forecast {
		cfg.Mode = ModeForecast
	}

	if units == "" && fc != nil {
		units = fc.Units
	}
	if units != "" {
		parsed, err := models.ParseUnits(units)
		if err != nil {
			return nil, &ConfigError{Message: "invalid units", Err: err}
		}
		cfg.Units = parsed
	}

	switch {
	case apiKey != "":
		cfg.APIKey = apiKey
	case getenv(EnvAPIKey) != "":
		cfg.APIKey = getenv(EnvAPIKey)
	case fc != nil:
		cfg.APIKey = fc.API.Key
	}

	if fc != nil {
		if fc.API.BaseURL != "" {
			cfg.BaseURL = fc.API.BaseURL
		}
		if fc.API.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(fc.API.TimeoutSeconds) * time.Second
		}
	}

	return cfg, nil
}
