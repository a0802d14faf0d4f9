package nws

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder strings rendered for absent upstream fields.
const (
	unknown     = "Unknown"
	noHeadline  = "No headline"
	noForecast  = "No forecast available"
	defaultUnit = "F"
)

// FormatAlert renders one alert feature as a fixed six-line block ending in
// a "---" separator.
func FormatAlert(f AlertFeature) string {
	p := f.Properties
	return strings.Join([]string{
		"Event: " + orElse(p.Event, unknown),
		"Area: " + orElse(p.AreaDesc, unknown),
		"Severity: " + orElse(p.Severity, unknown),
		"Status: " + orElse(p.Status, unknown),
		"Headline: " + orElse(p.Headline, noHeadline),
		"---",
	}, "\n")
}

// FormatPeriod renders one forecast period as a fixed five-line block. The
// wind line keeps its separating space even when the direction is absent,
// matching the upstream rendering byte for byte.
func FormatPeriod(p ForecastPeriod) string {
	temp := unknown
	if p.Temperature != nil {
		temp = strconv.FormatFloat(*p.Temperature, 'f', -1, 64)
	}
	return strings.Join([]string{
		orElse(p.Name, unknown) + ":",
		fmt.Sprintf("Temperature: %s°%s", temp, orElse(p.TemperatureUnit, defaultUnit)),
		fmt.Sprintf("Wind: %s %s", orElse(p.WindSpeed, unknown), p.WindDirection),
		orElse(p.ShortForecast, noForecast),
		"---",
	}, "\n")
}

func orElse(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
