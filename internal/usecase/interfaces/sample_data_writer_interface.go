package interfaces

import (
	"context"
	"mecanica_workorder/internal/domain/entities"
)

// ISampleDataWriter prepares a store for local use: it creates the schema and
// loads a data set. Writes are idempotent.
type ISampleDataWriter interface {
	EnsureSchema(ctx context.Context) error
	Load(ctx context.Context, data entities.SampleData) error
}
