package repository

import (
	"context"
	_ "embed"
	"errors"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed migrations/001_work_orders.sql
var workOrdersSchema string

const (
	selectVehicleByPlate = `SELECT id, plate_number FROM vehicles WHERE plate_number = $1`

	selectLatestMaintenance = `
		SELECT id, vehicle_id, labor_hours, labor_rate, created_at
		FROM maintenance
		WHERE vehicle_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	selectPartsForMaintenance = `
		SELECT mp.maintenance_id, mp.part_id, p.name, mp.quantity, p.unit_price
		FROM maintenance_parts mp
		JOIN parts p ON p.id = mp.part_id
		WHERE mp.maintenance_id = $1
		ORDER BY mp.part_id ASC`

	upsertVehicle = `
		INSERT INTO vehicles (id, plate_number) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET plate_number = EXCLUDED.plate_number`

	upsertMaintenance = `
		INSERT INTO maintenance (id, vehicle_id, labor_hours, labor_rate, created_at)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5)
		ON CONFLICT (id) DO UPDATE SET
			vehicle_id = EXCLUDED.vehicle_id,
			labor_hours = EXCLUDED.labor_hours,
			labor_rate = EXCLUDED.labor_rate,
			created_at = EXCLUDED.created_at`

	upsertPart = `
		INSERT INTO parts (id, name, unit_price) VALUES ($1, $2, $3::numeric)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, unit_price = EXCLUDED.unit_price`

	upsertMaintenancePart = `
		INSERT INTO maintenance_parts (maintenance_id, part_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (maintenance_id, part_id) DO UPDATE SET quantity = EXCLUDED.quantity`
)

// pgxDB is the subset of *pgxpool.Pool used by the repository.
type pgxDB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WorkOrderPostgresRepository reads work order data from PostgreSQL.
type WorkOrderPostgresRepository struct {
	db     pgxDB
	logger *zap.Logger
}

var (
	_ interfaces.IWorkOrderRepository = (*WorkOrderPostgresRepository)(nil)
	_ interfaces.ISampleDataWriter    = (*WorkOrderPostgresRepository)(nil)
)

func NewWorkOrderPostgresRepository(pool *pgxpool.Pool, logger *zap.Logger) *WorkOrderPostgresRepository {
	return newWorkOrderPostgresRepository(pool, logger)
}

func newWorkOrderPostgresRepository(db pgxDB, logger *zap.Logger) *WorkOrderPostgresRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkOrderPostgresRepository{db: db, logger: logger.Named("postgres")}
}

func (r *WorkOrderPostgresRepository) FindVehicleByPlate(ctx context.Context, plate string) (entities.Vehicle, error) {
	var v entities.Vehicle
	err := r.db.QueryRow(ctx, selectVehicleByPlate, plate).Scan(&v.ID, &v.PlateNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *WorkOrderPostgresRepository) FindLatestMaintenance(ctx context.Context, vehicleID int64) (entities.MaintenanceRecord, error) {
	var m entities.MaintenanceRecord
	err := r.db.QueryRow(ctx, selectLatestMaintenance, vehicleID).
		Scan(&m.ID, &m.VehicleID, &m.LaborHours, &m.LaborRate, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.MaintenanceRecord{}, nil
		}
		return entities.MaintenanceRecord{}, err
	}
	m.CreatedAt = m.CreatedAt.UTC()
	return m, nil
}

func (r *WorkOrderPostgresRepository) FindPartsForMaintenance(ctx context.Context, maintenanceID int64) ([]entities.MaintenancePart, error) {
	rows, err := r.db.Query(ctx, selectPartsForMaintenance, maintenanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := []entities.MaintenancePart{}
	for rows.Next() {
		var p entities.MaintenancePart
		if err := rows.Scan(&p.MaintenanceID, &p.PartID, &p.PartName, &p.Quantity, &p.UnitPrice); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return parts, nil
}

// EnsureSchema applies the embedded migration. Statements are idempotent.
func (r *WorkOrderPostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, workOrdersSchema); err != nil {
		return err
	}
	r.logger.Info("schema applied")
	return nil
}

// Load upserts data in a single transaction.
func (r *WorkOrderPostgresRepository) Load(ctx context.Context, data entities.SampleData) error {
	b := &pgx.Batch{}
	for _, v := range data.Vehicles {
		b.Queue(upsertVehicle, v.ID, v.PlateNumber)
	}
	for _, m := range data.Maintenance {
		b.Queue(upsertMaintenance, m.ID, m.VehicleID, m.LaborHours.String(), m.LaborRate.String(), m.CreatedAt)
	}
	for _, p := range data.Parts {
		b.Queue(upsertPart, p.ID, p.Name, p.UnitPrice.String())
	}
	for _, l := range data.Links {
		b.Queue(upsertMaintenancePart, l.MaintenanceID, l.PartID, l.Quantity)
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, b).Close()
	})
}
