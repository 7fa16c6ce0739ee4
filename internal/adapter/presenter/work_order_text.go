package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"mecanica_workorder/internal/domain/entities"
)

const (
	reportTitle     = "Work Order Summary"
	labelWidth      = 20
	separatorLength = 25
)

// RenderText formats a work order result as the plain-text report printed by
// the CLI and served with ?format=text.
func RenderText(result entities.WorkOrderResult) string {
	switch r := result.(type) {
	case entities.FullSummary:
		return renderFull(r)
	case entities.NoPartsSummary:
		return entities.NoPartsMessage + "\n"
	default:
		return ""
	}
}

func renderFull(s entities.FullSummary) string {
	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(strings.Repeat("-", separatorLength) + "\n")
	line(&b, "Vehicle Plate", s.Plate())
	line(&b, "Parts Used (IDs)", JoinPartIDs(s.PartIDs()))
	line(&b, "Total Parts Cost", s.TotalPartsCost().String())
	line(&b, "Labor Hours", s.LaborHours().String())
	line(&b, "Labor Rate", s.LaborRate().String())
	line(&b, "Total Labor Cost", s.TotalLaborCost().String())
	line(&b, "Overall Total Cost", s.OverallTotalCost().String())
	return b.String()
}

func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-*s: %s\n", labelWidth, label, value)
}

// JoinPartIDs renders part ids as "1, 3, 4".
func JoinPartIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ", ")
}
