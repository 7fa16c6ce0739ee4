package repository

import (
	"context"
	"fmt"

	"mecanica_workorder/internal/infrastructure/config"
	"mecanica_workorder/internal/infrastructure/database"
	"mecanica_workorder/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// WorkOrderStore is implemented by both backends: the read side used by the
// summary use case and the writer used by `workorder seed`.
type WorkOrderStore interface {
	interfaces.IWorkOrderRepository
	interfaces.ISampleDataWriter
}

// NewWorkOrderStore connects to the backend selected by cfg.StoreDriver. The
// returned close func releases the connection and is never nil.
func NewWorkOrderStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (WorkOrderStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, func() {}, err
		}
		return NewWorkOrderPostgresRepository(pool, logger), pool.Close, nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, logger)
		if err != nil {
			return nil, func() {}, err
		}
		return NewWorkOrderDynamoRepository(ddb, cfg.DynamoDB.Tables, logger), func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
