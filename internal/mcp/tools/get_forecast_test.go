package tools

import (
	"context"
	"fmt"
	"testing"

	"github.com/roivaz/weather-mcp/internal/nws"
)

type fakeForecastService struct {
	urlCalls      int
	forecastCalls int
	forecastURL   string
	urlErr        error
	resp          *nws.ForecastResponse
	respErr       error
	requestedURL  string
}

func (f *fakeForecastService) ForecastURL(ctx context.Context, lat, lon float64) (string, error) {
	f.urlCalls++
	return f.forecastURL, f.urlErr
}

func (f *fakeForecastService) Forecast(ctx context.Context, url string) (*nws.ForecastResponse, error) {
	f.forecastCalls++
	f.requestedURL = url
	return f.resp, f.respErr
}

func forecastArgs(lat, lon float64) map[string]any {
	return map[string]any{"latitude": lat, "longitude": lon}
}

func TestGetForecast_RejectsOutOfRangeCoordinatesWithoutUpstreamCall(t *testing.T) {
	cases := map[string]map[string]any{
		"latitude too high":     forecastArgs(90.5, 0),
		"latitude too low":      forecastArgs(-91, 0),
		"longitude too high":    forecastArgs(0, 180.1),
		"longitude too low":     forecastArgs(0, -181),
		"latitude not a number": {"latitude": "forty", "longitude": 0.0},
		"longitude missing":     {"latitude": 40.0},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &fakeForecastService{}
			h := &GetForecastHandler{Service: svc}

			res, err := h.ToolAdapter(context.Background(), callRequest(args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.IsError {
				t.Fatal("expected tool error result")
			}
			if svc.urlCalls != 0 || svc.forecastCalls != 0 {
				t.Fatalf("expected zero upstream calls, got %d and %d", svc.urlCalls, svc.forecastCalls)
			}
		})
	}
}

func TestGetForecast_GridLookupFailure(t *testing.T) {
	svc := &fakeForecastService{urlErr: fmt.Errorf("boom")}
	h := &GetForecastHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(forecastArgs(40.7128, -74.006)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Failed to retrieve grid point data for coordinates: 40.7128, -74.006. " +
		"This location may not be supported by the NWS API (only US locations are supported)."
	if got := resultText(t, res); got != want {
		t.Fatalf("unexpected text:\n%q\nwant:\n%q", got, want)
	}
	if svc.forecastCalls != 0 {
		t.Fatal("chain must abort before the forecast hop")
	}
}

func TestGetForecast_MissingForecastURLStopsAfterOneCall(t *testing.T) {
	svc := &fakeForecastService{forecastURL: ""}
	h := &GetForecastHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(forecastArgs(40.7128, -74.006)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); got != "Failed to get forecast URL from grid point data" {
		t.Fatalf("unexpected text %q", got)
	}
	if svc.urlCalls != 1 {
		t.Fatalf("expected exactly one points lookup, got %d", svc.urlCalls)
	}
	if svc.forecastCalls != 0 {
		t.Fatalf("expected no forecast hop, got %d", svc.forecastCalls)
	}
}

func TestGetForecast_ForecastFetchFailure(t *testing.T) {
	svc := &fakeForecastService{
		forecastURL: "https://api.weather.gov/gridpoints/OKX/33,35/forecast",
		respErr:     fmt.Errorf("boom"),
	}
	h := &GetForecastHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(forecastArgs(40.7128, -74.006)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); got != "Failed to retrieve forecast data" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGetForecast_NoPeriods(t *testing.T) {
	svc := &fakeForecastService{
		forecastURL: "https://api.weather.gov/gridpoints/OKX/33,35/forecast",
		resp:        &nws.ForecastResponse{},
	}
	h := &GetForecastHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(forecastArgs(40.7128, -74.006)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); got != "No forecast periods available" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGetForecast_FormatsPeriods(t *testing.T) {
	temp := 72.0
	svc := &fakeForecastService{
		forecastURL: "https://api.weather.gov/gridpoints/OKX/33,35/forecast",
		resp: &nws.ForecastResponse{Properties: nws.ForecastProperties{Periods: []nws.ForecastPeriod{
			{Name: "Monday", Temperature: &temp, TemperatureUnit: "F", WindSpeed: "10 mph", WindDirection: "NW", ShortForecast: "Sunny"},
		}}},
	}
	h := &GetForecastHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(forecastArgs(40.7128, -74.006)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Forecast for 40.7128, -74.006:\n\n" +
		"Monday:\nTemperature: 72°F\nWind: 10 mph NW\nSunny\n---"
	if got := resultText(t, res); got != want {
		t.Fatalf("unexpected text:\n%q\nwant:\n%q", got, want)
	}
	if svc.requestedURL != svc.forecastURL {
		t.Fatalf("second hop must fetch the URL returned by the first, got %q", svc.requestedURL)
	}
}
