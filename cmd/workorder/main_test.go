package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"mecanica_workorder/internal/adapter/persistence/repository"
	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore serves the sample data set from memory.
type memoryStore struct {
	data   entities.SampleData
	loaded bool
	err    error
}

func (m *memoryStore) FindVehicleByPlate(_ context.Context, plate string) (entities.Vehicle, error) {
	for _, v := range m.data.Vehicles {
		if v.PlateNumber == plate {
			return v, m.err
		}
	}
	return entities.Vehicle{}, m.err
}

func (m *memoryStore) FindLatestMaintenance(_ context.Context, vehicleID int64) (entities.MaintenanceRecord, error) {
	var latest entities.MaintenanceRecord
	for _, r := range m.data.Maintenance {
		if r.VehicleID == vehicleID && (latest.ID == 0 || r.Newer(latest)) {
			latest = r
		}
	}
	return latest, m.err
}

func (m *memoryStore) FindPartsForMaintenance(_ context.Context, maintenanceID int64) ([]entities.MaintenancePart, error) {
	var out []entities.MaintenancePart
	for _, l := range m.data.Links {
		if l.MaintenanceID == maintenanceID {
			out = append(out, l)
		}
	}
	return out, m.err
}

func (m *memoryStore) EnsureSchema(context.Context) error { return m.err }

func (m *memoryStore) Load(_ context.Context, data entities.SampleData) error {
	if m.err != nil {
		return m.err
	}
	m.data, m.loaded = data, true
	return nil
}

func testDeps(store *memoryStore) *deps {
	return &deps{
		loadConfig: func() (*config.Config, error) {
			return &config.Config{StoreDriver: config.StoreDynamoDB, LogLevel: "info", QueryTimeout: time.Second}, nil
		},
		newLogger: func(string) (*zap.Logger, error) { return zap.NewNop(), nil },
		openStore: func(context.Context, *config.Config, *zap.Logger) (repository.WorkOrderStore, func(), error) {
			return store, func() {}, nil
		},
	}
}

func execute(d *deps, args ...string) (string, error) {
	cmd := newRootCmd(d)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	t.Run("prints text report", func(t *testing.T) {
		out, err := execute(testDeps(&memoryStore{data: entities.SampleDataSet()}), "summary", " RAD-123Z ")
		require.NoError(t, err)
		assert.Contains(t, out, "Vehicle Plate       : RAD-123Z")
		assert.Contains(t, out, "Overall Total Cost  : 1007.5")
	})

	t.Run("prints json", func(t *testing.T) {
		out, err := execute(testDeps(&memoryStore{data: entities.SampleDataSet()}), "summary", "RAD-123Z", "--json")
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		assert.Equal(t, "full", body["kind"])
		assert.Equal(t, "850", body["total_parts_cost"])
	})

	t.Run("no parts", func(t *testing.T) {
		data := entities.SampleDataSet()
		data.Links = nil
		out, err := execute(testDeps(&memoryStore{data: data}), "summary", "RAD-123Z")
		require.NoError(t, err)
		assert.Equal(t, entities.NoPartsMessage+"\n", out)
	})

	t.Run("unknown plate", func(t *testing.T) {
		_, err := execute(testDeps(&memoryStore{data: entities.SampleDataSet()}), "summary", "ZZZ-000")
		require.Error(t, err)
		assert.Equal(t, "no such vehicle/record: ZZZ-000", err.Error())
	})

	t.Run("plate case is significant", func(t *testing.T) {
		data := entities.SampleDataSet()
		data.Vehicles = append(data.Vehicles, entities.Vehicle{ID: 2, PlateNumber: "abc-1x"})
		data.Maintenance = append(data.Maintenance, entities.MaintenanceRecord{
			ID: 2, VehicleID: 2, LaborHours: decimal.NewFromInt(1), LaborRate: decimal.NewFromInt(10),
		})

		out, err := execute(testDeps(&memoryStore{data: data}), "summary", "abc-1x")
		require.NoError(t, err)
		assert.Equal(t, entities.NoPartsMessage+"\n", out)

		_, err = execute(testDeps(&memoryStore{data: data}), "summary", "rad-123z")
		require.EqualError(t, err, "no such vehicle/record: rad-123z")
	})

	t.Run("store failure", func(t *testing.T) {
		_, err := execute(testDeps(&memoryStore{err: errors.New("connection refused")}), "summary", "RAD-123Z")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "connection refused"))
	})

	t.Run("requires plate", func(t *testing.T) {
		_, err := execute(testDeps(&memoryStore{}), "summary")
		require.Error(t, err)
	})
}

func TestSeedCommand(t *testing.T) {
	store := &memoryStore{}
	out, err := execute(testDeps(store), "seed")
	require.NoError(t, err)
	assert.True(t, store.loaded)
	assert.Equal(t, "seeded dynamodb store: 1 vehicles, 1 maintenance records, 4 parts, 3 links\n", out)

	out, err = execute(testDeps(store), "summary", "RAD-123Z")
	require.NoError(t, err)
	assert.Contains(t, out, "Parts Used (IDs)    : 1, 3, 4")
}

func TestRootCommand_ConfigError(t *testing.T) {
	d := testDeps(&memoryStore{})
	d.loadConfig = func() (*config.Config, error) { return nil, errors.New("invalid PORT") }

	_, err := execute(d, "seed")
	require.EqualError(t, err, "invalid PORT")
}
