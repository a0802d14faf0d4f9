package mcp

import (
	"github.com/roivaz/weather-mcp/internal/config"
	"github.com/roivaz/weather-mcp/internal/logging"
	"github.com/roivaz/weather-mcp/internal/mcp/tools"
	"github.com/roivaz/weather-mcp/internal/nws"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
}

func DefaultConfig() Config {
	baseLogger := logging.DefaultLogger(config.LogLevel())
	client := nws.NewClient(nws.Config{
		BaseURL:   config.NWSBaseURL(),
		UserAgent: config.UserAgent(),
		Logger:    logging.New(baseLogger.WithName("nws")),
	})

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"get-alerts":   &tools.GetAlertsHandler{Service: client},
			"get-forecast": &tools.GetForecastHandler{Service: client},
		},
	}
}
