package nws

// Shapes of the api.weather.gov GeoJSON payloads. Only the fields the tools
// render are decoded; everything else in the documents is ignored.

type AlertProperties struct {
	Event    string `json:"event"`
	AreaDesc string `json:"areaDesc"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Headline string `json:"headline"`
}

type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

type AlertsResponse struct {
	Features []AlertFeature `json:"features"`
}

// ForecastPeriod keeps Temperature as a pointer so a genuine 0° reading
// stays distinguishable from an absent value.
type ForecastPeriod struct {
	Name            string   `json:"name"`
	Temperature     *float64 `json:"temperature"`
	TemperatureUnit string   `json:"temperatureUnit"`
	WindSpeed       string   `json:"windSpeed"`
	WindDirection   string   `json:"windDirection"`
	ShortForecast   string   `json:"shortForecast"`
}

type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}
