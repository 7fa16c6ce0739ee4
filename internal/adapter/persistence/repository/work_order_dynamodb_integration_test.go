package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/infrastructure/config"
	"mecanica_workorder/internal/infrastructure/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Integration test (requires DynamoDB Local or a real account)
func TestWorkOrderDynamoRepository_Integration(t *testing.T) {
	if os.Getenv("DYNAMODB_ENDPOINT") == "" {
		t.Skip("DYNAMODB_ENDPOINT not set, skipping integration test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load()
	require.NoError(t, err)
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, zap.NewNop())
	require.NoError(t, err)
	r := NewWorkOrderDynamoRepository(ddb, cfg.DynamoDB.Tables, zap.NewNop())

	require.NoError(t, r.EnsureSchema(ctx))
	require.NoError(t, r.Load(ctx, entities.SampleDataSet()))

	v, err := r.FindVehicleByPlate(ctx, "RAD-123Z")
	require.NoError(t, err)
	require.NotZero(t, v.ID)

	m, err := r.FindLatestMaintenance(ctx, v.ID)
	require.NoError(t, err)
	require.NotZero(t, m.ID)

	parts, err := r.FindPartsForMaintenance(ctx, m.ID)
	require.NoError(t, err)

	s := entities.NewFullSummary(v.PlateNumber, m, parts)
	assert.Equal(t, []int64{1, 3, 4}, s.PartIDs())
	assert.True(t, s.TotalPartsCost().Equal(decimal.NewFromInt(850)))
	assert.True(t, s.OverallTotalCost().Equal(decimal.RequireFromString("1007.5")))
}
