package request

import (
	"errors"
	"strings"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

var ErrInvalidFormat = errors.New("invalid format")

// WorkOrderSummaryRequest binds GET /vehicles/:plate/work-order-summary.
type WorkOrderSummaryRequest struct {
	Plate  string `uri:"plate"`
	Format string `form:"format"`
}

func (r WorkOrderSummaryRequest) ResolvePlate() string {
	return strings.TrimSpace(r.Plate)
}

// ResolveFormat defaults to JSON and accepts "json" or "text" in any case.
func (r WorkOrderSummaryRequest) ResolveFormat() (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(r.Format)); v {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", ErrInvalidFormat
	}
}
