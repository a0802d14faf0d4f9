package tools

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
)

// degradeToText reports an upstream or domain failure as ordinary successful
// tool output. Handlers route every failure through here so the protocol
// layer never observes a handler error.
func degradeToText(msg string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(msg), nil
}

// parseStateArgument validates a two-letter state code and returns it
// uppercased.
func parseStateArgument(value any) (string, error) {
	state, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("state must be a string")
	}
	if utf8.RuneCountInString(state) != 2 {
		return "", fmt.Errorf("state must be a two-letter US state code")
	}
	return strings.ToUpper(state), nil
}

// parseCoordinateArgument validates a numeric argument within [min, max].
func parseCoordinateArgument(value any, name string, min, max float64) (float64, error) {
	v, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be between %g and %g", name, min, max)
	}
	return v, nil
}
