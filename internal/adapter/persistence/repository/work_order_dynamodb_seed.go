package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mecanica_workorder/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const tableActiveTimeout = 2 * time.Minute

// EnsureSchema creates the four work order tables when they are missing and
// waits until they are active.
func (r *WorkOrderDynamoRepository) EnsureSchema(ctx context.Context) error {
	for _, in := range r.tableDefinitions() {
		name := aws.ToString(in.TableName)
		_, err := r.ddb.CreateTable(ctx, in)
		if err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return fmt.Errorf("create table %s: %w", name, err)
			}
			r.logger.Debug("table already exists", zap.String("table", name))
		} else {
			r.logger.Info("table created", zap.String("table", name))
		}

		waiter := dynamodb.NewTableExistsWaiter(r.ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableActiveTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
	}
	return nil
}

// Load writes data with unconditional puts, so loading twice is harmless.
func (r *WorkOrderDynamoRepository) Load(ctx context.Context, data entities.SampleData) error {
	for _, v := range data.Vehicles {
		if err := r.put(ctx, r.vehiclesTable, vehicleItem{ID: v.ID, PlateNumber: v.PlateNumber}); err != nil {
			return err
		}
	}
	for _, m := range data.Maintenance {
		if err := r.put(ctx, r.maintenanceTable, toMaintenanceItem(m)); err != nil {
			return err
		}
	}
	for _, p := range data.Parts {
		if err := r.put(ctx, r.partsTable, toPartItem(p)); err != nil {
			return err
		}
	}
	for _, l := range data.Links {
		it := maintenancePartItem{MaintenanceID: l.MaintenanceID, PartID: l.PartID, Quantity: l.Quantity}
		if err := r.put(ctx, r.maintenancePartsTable, it); err != nil {
			return err
		}
	}
	return nil
}

func (r *WorkOrderDynamoRepository) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put into %s: %w", table, err)
	}
	return nil
}

func (r *WorkOrderDynamoRepository) tableDefinitions() []*dynamodb.CreateTableInput {
	n := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeN}
	}
	s := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
	}
	hash := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
	}
	rng := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeRange}
	}
	all := &types.Projection{ProjectionType: types.ProjectionTypeAll}

	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(r.vehiclesTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{n("id"), s("plate_number")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(vehiclesPlateIndex),
				KeySchema:  []types.KeySchemaElement{hash("plate_number")},
				Projection: all,
			}},
		},
		{
			TableName:            aws.String(r.maintenanceTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{n("id"), n("vehicle_id"), s("created_at")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(maintenanceVehicleIndex),
				KeySchema:  []types.KeySchemaElement{hash("vehicle_id"), rng("created_at")},
				Projection: all,
			}},
		},
		{
			TableName:            aws.String(r.partsTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{n("id")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
		},
		{
			TableName:            aws.String(r.maintenancePartsTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{n("maintenance_id"), n("part_id")},
			KeySchema:            []types.KeySchemaElement{hash("maintenance_id"), rng("part_id")},
		},
	}
}
