package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/weather-mcp/internal/nws"
)

type AlertsService interface {
	ActiveAlerts(ctx context.Context, state string) (*nws.AlertsResponse, error)
}

type GetAlertsHandler struct {
	Service AlertsService
}

func (h *GetAlertsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := parseStateArgument(req.GetArguments()["state"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	alerts, err := h.Service.ActiveAlerts(ctx, state)
	if err != nil {
		return degradeToText("Failed to retrieve alerts data")
	}
	if len(alerts.Features) == 0 {
		return degradeToText("No active alerts for " + state)
	}

	blocks := make([]string, len(alerts.Features))
	for i, feature := range alerts.Features {
		blocks[i] = nws.FormatAlert(feature)
	}
	text := fmt.Sprintf("Active alerts for %s:\n\n%s", state, strings.Join(blocks, "\n"))
	return mcp.NewToolResultText(text), nil
}
