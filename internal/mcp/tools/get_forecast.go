package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/weather-mcp/internal/nws"
)

type ForecastService interface {
	ForecastURL(ctx context.Context, lat, lon float64) (string, error)
	Forecast(ctx context.Context, url string) (*nws.ForecastResponse, error)
}

type GetForecastHandler struct {
	Service ForecastService
}

// ToolAdapter resolves a coordinate to its forecast through the NWS two-hop
// chain: a points lookup first, then the forecast URL that lookup returned.
// The first failing hop aborts the chain with a terminal message.
func (h *GetForecastHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	lat, err := parseCoordinateArgument(args["latitude"], "latitude", -90, 90)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lon, err := parseCoordinateArgument(args["longitude"], "longitude", -180, 180)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	forecastURL, err := h.Service.ForecastURL(ctx, lat, lon)
	if err != nil {
		return degradeToText(fmt.Sprintf(
			"Failed to retrieve grid point data for coordinates: %s, %s. This location may not be supported by the NWS API (only US locations are supported).",
			formatCoordinate(lat), formatCoordinate(lon)))
	}
	if forecastURL == "" {
		return degradeToText("Failed to get forecast URL from grid point data")
	}

	forecast, err := h.Service.Forecast(ctx, forecastURL)
	if err != nil {
		return degradeToText("Failed to retrieve forecast data")
	}
	if len(forecast.Properties.Periods) == 0 {
		return degradeToText("No forecast periods available")
	}

	blocks := make([]string, len(forecast.Properties.Periods))
	for i, period := range forecast.Properties.Periods {
		blocks[i] = nws.FormatPeriod(period)
	}
	text := fmt.Sprintf("Forecast for %s, %s:\n\n%s",
		formatCoordinate(lat), formatCoordinate(lon), strings.Join(blocks, "\n"))
	return mcp.NewToolResultText(text), nil
}

// formatCoordinate echoes a coordinate the way it was supplied, not the
// 4-decimal form used for the points URL.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
