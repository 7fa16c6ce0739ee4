package response

import (
	"mecanica_workorder/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	KindFull    = "full"
	KindNoParts = "no_parts"
)

// WorkOrderSummaryResponse is the JSON form of a work order result. Cost
// fields are only present for kind "full"; message only for "no_parts".
// Decimals are encoded as exact strings ("157.5").
type WorkOrderSummaryResponse struct {
	Kind             string           `json:"kind"`
	Plate            string           `json:"plate"`
	Message          string           `json:"message,omitempty"`
	PartsUsed        []int64          `json:"parts_used,omitempty"`
	TotalPartsCost   *decimal.Decimal `json:"total_parts_cost,omitempty" swaggertype:"string" example:"850"`
	LaborHours       *decimal.Decimal `json:"labor_hours,omitempty" swaggertype:"string" example:"3.5"`
	LaborRate        *decimal.Decimal `json:"labor_rate,omitempty" swaggertype:"string" example:"45"`
	TotalLaborCost   *decimal.Decimal `json:"total_labor_cost,omitempty" swaggertype:"string" example:"157.5"`
	OverallTotalCost *decimal.Decimal `json:"overall_total_cost,omitempty" swaggertype:"string" example:"1007.5"`
}

func FromWorkOrderResult(result entities.WorkOrderResult) WorkOrderSummaryResponse {
	switch r := result.(type) {
	case entities.FullSummary:
		return WorkOrderSummaryResponse{
			Kind:             KindFull,
			Plate:            r.Plate(),
			PartsUsed:        r.PartIDs(),
			TotalPartsCost:   ptr(r.TotalPartsCost()),
			LaborHours:       ptr(r.LaborHours()),
			LaborRate:        ptr(r.LaborRate()),
			TotalLaborCost:   ptr(r.TotalLaborCost()),
			OverallTotalCost: ptr(r.OverallTotalCost()),
		}
	case entities.NoPartsSummary:
		return WorkOrderSummaryResponse{
			Kind:    KindNoParts,
			Plate:   r.Plate(),
			Message: entities.NoPartsMessage,
		}
	default:
		return WorkOrderSummaryResponse{}
	}
}

func ptr(v decimal.Decimal) *decimal.Decimal {
	return &v
}
