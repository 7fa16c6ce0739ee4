package entities

import "github.com/shopspring/decimal"

// Part is a catalogue item that can be used during maintenance.
type Part struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// MaintenancePart is a part linked to a maintenance record, joined with the
// part's catalogue price.
//
// Quantity is stored with the link but does not take part in cost
// aggregation: each linked part is billed once at its unit price.
type MaintenancePart struct {
	MaintenanceID int64           `json:"maintenance_id"`
	PartID        int64           `json:"part_id"`
	PartName      string          `json:"part_name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}
