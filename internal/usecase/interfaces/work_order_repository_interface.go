package interfaces

import (
	"context"
	"mecanica_workorder/internal/domain/entities"
)

// IWorkOrderRepository abstracts the read-only store behind work order summaries.
//
// The summary is resolved with three sequential reads:
//   - vehicle by plate
//   - latest maintenance record of that vehicle (max created_at, then max id)
//   - parts linked to that record, joined with their unit price
//
// Lookups return a zero-value entity (ID == 0) when nothing matches.

type IWorkOrderRepository interface {
	FindVehicleByPlate(ctx context.Context, plate string) (entities.Vehicle, error)
	FindLatestMaintenance(ctx context.Context, vehicleID int64) (entities.MaintenanceRecord, error)
	FindPartsForMaintenance(ctx context.Context, maintenanceID int64) ([]entities.MaintenancePart, error)
}
