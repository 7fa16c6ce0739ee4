package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SampleData is the reference data set loaded by `workorder seed`.
type SampleData struct {
	Vehicles    []Vehicle
	Maintenance []MaintenanceRecord
	Parts       []Part
	Links       []MaintenancePart
}

// SampleDataSet returns the reference workshop data: vehicle RAD-123Z with a
// single maintenance record that used parts 1, 3 and 4.
func SampleDataSet() SampleData {
	createdAt := time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC)
	return SampleData{
		Vehicles: []Vehicle{
			{ID: 1, PlateNumber: "RAD-123Z"},
		},
		Maintenance: []MaintenanceRecord{
			{
				ID:         1,
				VehicleID:  1,
				LaborHours: decimal.RequireFromString("3.5"),
				LaborRate:  decimal.NewFromInt(45),
				CreatedAt:  createdAt,
			},
		},
		Parts: []Part{
			{ID: 1, Name: "Engine Oil", UnitPrice: decimal.NewFromInt(250)},
			{ID: 2, Name: "Spark Plug", UnitPrice: decimal.NewFromInt(120)},
			{ID: 3, Name: "Brake Pads", UnitPrice: decimal.NewFromInt(300)},
			{ID: 4, Name: "Air Filter", UnitPrice: decimal.NewFromInt(300)},
		},
		Links: []MaintenancePart{
			{MaintenanceID: 1, PartID: 1, Quantity: 1},
			{MaintenanceID: 1, PartID: 3, Quantity: 1},
			{MaintenanceID: 1, PartID: 4, Quantity: 1},
		},
	}
}
