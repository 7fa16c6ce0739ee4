package entities

import "github.com/shopspring/decimal"

// NoPartsMessage is the report line used when a maintenance record has no
// linked parts.
const NoPartsMessage = "No parts used for this maintenance record."

// WorkOrderResult is the outcome of building a work order summary. It is
// either a NoPartsSummary or a FullSummary; callers dispatch with a type
// switch.
type WorkOrderResult interface {
	Plate() string
	isWorkOrderResult()
}

// NoPartsSummary is returned when the latest maintenance record of a vehicle
// has no parts attached. It carries no cost breakdown.
type NoPartsSummary struct {
	plate string
}

func NewNoPartsSummary(plate string) NoPartsSummary {
	return NoPartsSummary{plate: plate}
}

func (s NoPartsSummary) Plate() string { return s.plate }

func (NoPartsSummary) isWorkOrderResult() {}

// FullSummary is the cost breakdown of a maintenance record with at least one
// linked part. Values are fixed at construction.
type FullSummary struct {
	plate            string
	partIDs          []int64
	totalPartsCost   decimal.Decimal
	laborHours       decimal.Decimal
	laborRate        decimal.Decimal
	totalLaborCost   decimal.Decimal
	overallTotalCost decimal.Decimal
}

// NewFullSummary derives the totals for record from its linked parts. Part
// order is preserved in PartIDs; quantities are ignored.
func NewFullSummary(plate string, record MaintenanceRecord, parts []MaintenancePart) FullSummary {
	ids := make([]int64, 0, len(parts))
	costs := make([]decimal.Decimal, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, p.PartID)
		costs = append(costs, p.UnitPrice)
	}

	partsCost := decimal.Sum(decimal.Zero, costs...)
	laborCost := record.LaborCost()

	return FullSummary{
		plate:            plate,
		partIDs:          ids,
		totalPartsCost:   partsCost,
		laborHours:       record.LaborHours,
		laborRate:        record.LaborRate,
		totalLaborCost:   laborCost,
		overallTotalCost: partsCost.Add(laborCost),
	}
}

func (s FullSummary) Plate() string { return s.plate }

// PartIDs returns a copy of the part identifiers in retrieval order.
func (s FullSummary) PartIDs() []int64 {
	out := make([]int64, len(s.partIDs))
	copy(out, s.partIDs)
	return out
}

func (s FullSummary) TotalPartsCost() decimal.Decimal   { return s.totalPartsCost }
func (s FullSummary) LaborHours() decimal.Decimal       { return s.laborHours }
func (s FullSummary) LaborRate() decimal.Decimal        { return s.laborRate }
func (s FullSummary) TotalLaborCost() decimal.Decimal   { return s.totalLaborCost }
func (s FullSummary) OverallTotalCost() decimal.Decimal { return s.overallTotalCost }

func (FullSummary) isWorkOrderResult() {}
