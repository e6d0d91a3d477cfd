package models

// WeatherReport represents current conditions for a city, fully populated
// before it reaches the formatter
type WeatherReport struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"windSpeed"`
	Visibility  int     `json:"visibility"`
	Demo        bool    `json:"demo"`
}
