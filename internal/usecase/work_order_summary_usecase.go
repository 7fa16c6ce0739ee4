package usecase

import (
	"context"
	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

// IWorkOrderSummaryUseCase builds the work order summary of a vehicle's
// latest maintenance record.
//
// Outcomes:
//   - entities.FullSummary when the record has linked parts
//   - entities.NoPartsSummary when it has none
//   - *NotFoundError when the plate or its maintenance record is missing
//   - *DataAccessError when the store fails

type IWorkOrderSummaryUseCase interface {
	Build(ctx context.Context, plate string) (entities.WorkOrderResult, error)
}

type WorkOrderSummaryUseCase struct {
	repo   interfaces.IWorkOrderRepository
	logger *zap.Logger
}

var _ IWorkOrderSummaryUseCase = (*WorkOrderSummaryUseCase)(nil)

func NewWorkOrderSummaryUseCase(repo interfaces.IWorkOrderRepository, logger *zap.Logger) *WorkOrderSummaryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkOrderSummaryUseCase{repo: repo, logger: logger.Named("work_order")}
}

// NormalizePlate trims surrounding blanks. Plates are matched as stored, so
// case is significant.
func NormalizePlate(plate string) string {
	return strings.TrimSpace(plate)
}

func (u *WorkOrderSummaryUseCase) Build(ctx context.Context, plate string) (entities.WorkOrderResult, error) {
	plate = NormalizePlate(plate)
	if plate == "" {
		return nil, ErrInvalidPlate
	}
	log := u.logger.With(zap.String("plate", plate))

	vehicle, err := u.repo.FindVehicleByPlate(ctx, plate)
	if err != nil {
		return nil, u.dataAccess(log, "find vehicle by plate", err)
	}
	if vehicle.ID == 0 {
		log.Debug("vehicle not found")
		return nil, &NotFoundError{Plate: plate, Reason: reasonVehicleNotFound}
	}

	record, err := u.repo.FindLatestMaintenance(ctx, vehicle.ID)
	if err != nil {
		return nil, u.dataAccess(log, "find latest maintenance", err)
	}
	if record.ID == 0 {
		log.Debug("vehicle has no maintenance records", zap.Int64("vehicle_id", vehicle.ID))
		return nil, &NotFoundError{Plate: plate, Reason: reasonNoMaintenance}
	}
	log = log.With(zap.Int64("maintenance_id", record.ID))

	parts, err := u.repo.FindPartsForMaintenance(ctx, record.ID)
	if err != nil {
		return nil, u.dataAccess(log, "find parts for maintenance", err)
	}

	if len(parts) == 0 {
		log.Info("work order summary built without parts")
		return entities.NewNoPartsSummary(plate), nil
	}

	summary := entities.NewFullSummary(plate, record, parts)
	log.Info("work order summary built",
		zap.Int("parts", len(parts)),
		zap.String("overall_total_cost", summary.OverallTotalCost().String()),
	)
	return summary, nil
}

func (u *WorkOrderSummaryUseCase) dataAccess(log *zap.Logger, op string, err error) error {
	log.Warn("work order store failure", zap.String("op", op), zap.Error(err))
	return &DataAccessError{Op: op, Err: err}
}
