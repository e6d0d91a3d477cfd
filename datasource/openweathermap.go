package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-cli/models"
)

// forecastEntriesPerDay is how many 3-hour steps the forecast endpoint
// returns per day.
const forecastEntriesPerDay = 8

// OpenWeatherMapProvider fetches live data from the OpenWeatherMap API
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	units      models.Units
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider.
// The timeout bounds every request issued by this provider.
func NewOpenWeatherMapProvider(apiKey, baseURL string, units models.Units, timeout time.Duration) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		units:   units,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// get issues one GET and returns the body on HTTP 200, or a typed error
// mapped from the status code.
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint string, params url.Values, city string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &NetworkError{Op: "building request", Err: err}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "reading response", Err: err}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized:
		return nil, &AuthError{Message: apiMessage(body)}
	case http.StatusNotFound:
		return nil, &NotFoundError{City: city}
	case http.StatusTooManyRequests:
		return nil, &RateLimitError{Message: apiMessage(body)}
	default:
		return nil, &APIError{StatusCode: resp.StatusCode, Message: apiMessage(body)}
	}
}

// apiMessage extracts the provider's error message from a non-200 body
func apiMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(body))
}

// CurrentWeather fetches current conditions for a city
func (p *OpenWeatherMapProvider) CurrentWeather(ctx context.Context, city string) (models.WeatherReport, error) {
	endpoint := fmt.Sprintf("%s/weather", p.baseURL)
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("units", p.units.QueryValue())

	body, err := p.get(ctx, endpoint, params, city)
	if err != nil {
		return models.WeatherReport{}, err
	}

	// Numeric fields decode through pointers so an absent field is
	// distinguishable from a legitimate zero (0°C is valid weather).
	var response struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Main struct {
			Temp      *float64 `json:"temp"`
			FeelsLike *float64 `json:"feels_like"`
			Humidity  *int     `json:"humidity"`
			Pressure  *int     `json:"pressure"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed *float64 `json:"speed"`
		} `json:"wind"`
		Visibility *int `json:"visibility"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.WeatherReport{}, &ParseError{Reason: "invalid JSON", Err: err}
	}

	switch {
	case response.Name == "":
		return models.WeatherReport{}, &ParseError{Reason: "missing field name"}
	case response.Sys.Country == "":
		return models.WeatherReport{}, &ParseError{Reason: "missing field sys.country"}
	case response.Main.Temp == nil:
		return models.WeatherReport{}, &ParseError{Reason: "missing field main.temp"}
	case response.Main.FeelsLike == nil:
		return models.WeatherReport{}, &ParseError{Reason: "missing field main.feels_like"}
	case response.Main.Humidity == nil:
		return models.WeatherReport{}, &ParseError{Reason: "missing field main.humidity"}
	case response.Main.Pressure == nil:
		return models.WeatherReport{}, &ParseError{Reason: "missing field main.pressure"}
	case len(response.Weather) == 0 || response.Weather[0].Description == "":
		return models.WeatherReport{}, &ParseError{Reason: "missing field weather[0].description"}
	case response.Wind.Speed == nil:
		return models.WeatherReport{}, &ParseError{Reason: "missing field wind.speed"}
	case response.Visibility == nil:
		return models.WeatherReport{}, &ParseError{Reason: "missing field visibility"}
	}

	return models.WeatherReport{
		City:        response.Name,
		Country:     response.Sys.Country,
		Temperature: *response.Main.Temp,
		FeelsLike:   *response.Main.FeelsLike,
		Description: response.Weather[0].Description,
		Humidity:    *response.Main.Humidity,
		Pressure:    *response.Main.Pressure,
		WindSpeed:   *response.Wind.Speed,
		Visibility:  *response.Visibility,
	}, nil
}

// Forecast fetches the 5-day forecast for a city. The endpoint returns
// 3-hour steps; each day collapses to its 12:00:00 entry, falling back to
// the first entry of the day when midday is absent.
func (p *OpenWeatherMapProvider) Forecast(ctx context.Context, city string) (models.ForecastReport, error) {
	endpoint := fmt.Sprintf("%s/forecast", p.baseURL)
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("units", p.units.QueryValue())
	params.Add("cnt", fmt.Sprintf("%d", models.ForecastDays*forecastEntriesPerDay))

	body, err := p.get(ctx, endpoint, params, city)
	if err != nil {
		return models.ForecastReport{}, err
	}

	var response struct {
		City struct {
			Name    string `json:"name"`
			Country string `json:"country"`
		} `json:"city"`
		List []struct {
			Main struct {
				Temp     *float64 `json:"temp"`
				Humidity *int     `json:"humidity"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
			} `json:"weather"`
			DtTxt string `json:"dt_txt"`
		} `json:"list"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.ForecastReport{}, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if response.City.Name == "" || response.City.Country == "" {
		return models.ForecastReport{}, &ParseError{Reason: "missing field city"}
	}

	report := models.ForecastReport{
		City:    response.City.Name,
		Country: response.City.Country,
	}

	// Group the 3-hour entries by calendar date, preserving response
	// order, which the provider keeps chronological.
	type dayEntry struct {
		date   time.Time
		picked *models.ForecastEntry
		midday bool
	}
	var days []*dayEntry
	byDate := make(map[string]*dayEntry)

	for _, item := range response.List {
		ts, err := time.Parse("2006-01-02 15:04:05", item.DtTxt)
		if err != nil {
			return models.ForecastReport{}, &ParseError{Reason: "invalid dt_txt", Err: err}
		}
		if item.Main.Temp == nil || item.Main.Humidity == nil {
			return models.ForecastReport{}, &ParseError{Reason: "missing field list[].main"}
		}
		if len(item.Weather) == 0 || item.Weather[0].Description == "" {
			return models.ForecastReport{}, &ParseError{Reason: "missing field list[].weather"}
		}

		dateKey := item.DtTxt[:len("2006-01-02")]
		day, seen := byDate[dateKey]
		if !seen {
			day = &dayEntry{date: ts.Truncate(24 * time.Hour)}
			byDate[dateKey] = day
			days = append(days, day)
		}
		if day.midday {
			continue
		}
		entry := models.ForecastEntry{
			Date:        day.date,
			Temperature: *item.Main.Temp,
			Description: item.Weather[0].Description,
			Humidity:    *item.Main.Humidity,
		}
		if day.picked == nil || ts.Hour() == 12 {
			day.picked = &entry
			day.midday = ts.Hour() == 12
		}
	}

	if len(days) < models.ForecastDays {
		return models.ForecastReport{}, &ParseError{
			Reason: fmt.Sprintf("forecast covers %d days, need %d", len(days), models.ForecastDays),
		}
	}
	for _, day := range days[:models.ForecastDays] {
		report.Entries = append(report.Entries, *day.picked)
	}

	return report, nil
}

var _ Provider = (*OpenWeatherMapProvider)(nil)
