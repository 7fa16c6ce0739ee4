package usecase

import (
	"context"
	"errors"
	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrSampleWriterNotConfigured = errors.New("sample data writer not configured")

// ISampleDataUseCase loads the reference data set into the configured store.
type ISampleDataUseCase interface {
	Seed(ctx context.Context) (entities.SampleData, error)
}

type SampleDataUseCase struct {
	writer interfaces.ISampleDataWriter
	logger *zap.Logger
}

var _ ISampleDataUseCase = (*SampleDataUseCase)(nil)

func NewSampleDataUseCase(writer interfaces.ISampleDataWriter, logger *zap.Logger) *SampleDataUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SampleDataUseCase{writer: writer, logger: logger.Named("seed")}
}

func (u *SampleDataUseCase) Seed(ctx context.Context) (entities.SampleData, error) {
	if u.writer == nil {
		return entities.SampleData{}, ErrSampleWriterNotConfigured
	}

	if err := u.writer.EnsureSchema(ctx); err != nil {
		return entities.SampleData{}, &DataAccessError{Op: "ensure schema", Err: err}
	}

	data := entities.SampleDataSet()
	if err := u.writer.Load(ctx, data); err != nil {
		return entities.SampleData{}, &DataAccessError{Op: "load sample data", Err: err}
	}

	u.logger.Info("sample data loaded",
		zap.Int("vehicles", len(data.Vehicles)),
		zap.Int("maintenance", len(data.Maintenance)),
		zap.Int("parts", len(data.Parts)),
		zap.Int("links", len(data.Links)),
	)
	return data, nil
}
