package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceRecord is one maintenance event performed on a vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-created_at-index): vehicle_id / created_at
//
// Monetary representation:
//   - LaborRate is currency per hour, LaborHours may be fractional.
type MaintenanceRecord struct {
	ID         int64           `json:"id"`
	VehicleID  int64           `json:"vehicle_id"`
	LaborHours decimal.Decimal `json:"labor_hours"`
	LaborRate  decimal.Decimal `json:"labor_rate"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LaborCost is hours times rate.
func (m MaintenanceRecord) LaborCost() decimal.Decimal {
	return m.LaborHours.Mul(m.LaborRate)
}

// Newer reports whether m should be preferred over other as the latest
// record of a vehicle. Equal timestamps fall back to the higher id.
func (m MaintenanceRecord) Newer(other MaintenanceRecord) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.After(other.CreatedAt)
	}
	return m.ID > other.ID
}
