package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/infrastructure/config"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	vehiclesPlateIndex       = "plate_number-index"
	maintenanceVehicleIndex  = "vehicle_id-created_at-index"
	batchGetMaxKeys          = 100
	batchGetMaxAttempts      = 5
	maintenanceQueryPageSize = 25
)

var ErrUnprocessedKeys = errors.New("dynamodb batch get left unprocessed keys")

// dynamoAPI is the subset of *dynamodb.Client used by the repository.
type dynamoAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type vehicleItem struct {
	ID          int64  `dynamodbav:"id"`
	PlateNumber string `dynamodbav:"plate_number"`
}

type maintenanceItem struct {
	ID         int64  `dynamodbav:"id"`
	VehicleID  int64  `dynamodbav:"vehicle_id"`
	LaborHours string `dynamodbav:"labor_hours"`
	LaborRate  string `dynamodbav:"labor_rate"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type partItem struct {
	ID        int64  `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type maintenancePartItem struct {
	MaintenanceID int64 `dynamodbav:"maintenance_id"`
	PartID        int64 `dynamodbav:"part_id"`
	Quantity      int   `dynamodbav:"quantity"`
}

// WorkOrderDynamoRepository reads work order data from DynamoDB.
//
// Table requirements:
//   - vehicles: PK id (N), GSI plate_number-index (PK plate_number)
//   - maintenance: PK id (N), GSI vehicle_id-created_at-index (PK vehicle_id, SK created_at)
//   - parts: PK id (N)
//   - maintenance_parts: PK maintenance_id (N), SK part_id (N)
//
// Decimals are stored as strings to keep them exact.

type WorkOrderDynamoRepository struct {
	ddb                   dynamoAPI
	logger                *zap.Logger
	vehiclesTable         string
	maintenanceTable      string
	partsTable            string
	maintenancePartsTable string
}

var (
	_ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)
	_ interfaces.ISampleDataWriter    = (*WorkOrderDynamoRepository)(nil)
)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client, tables config.DynamoTables, logger *zap.Logger) *WorkOrderDynamoRepository {
	return newWorkOrderDynamoRepository(ddb, tables, logger)
}

func newWorkOrderDynamoRepository(ddb dynamoAPI, tables config.DynamoTables, logger *zap.Logger) *WorkOrderDynamoRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkOrderDynamoRepository{
		ddb:                   ddb,
		logger:                logger.Named("dynamodb"),
		vehiclesTable:         tables.Vehicles,
		maintenanceTable:      tables.Maintenance,
		partsTable:            tables.Parts,
		maintenancePartsTable: tables.MaintenanceParts,
	}
}

func (r *WorkOrderDynamoRepository) FindVehicleByPlate(ctx context.Context, plate string) (entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.vehiclesTable),
		IndexName:              aws.String(vehiclesPlateIndex),
		KeyConditionExpression: aws.String("plate_number = :plate"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":plate": &types.AttributeValueMemberS{Value: plate},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Items) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Vehicle{}, err
	}
	return entities.Vehicle{ID: it.ID, PlateNumber: it.PlateNumber}, nil
}

// FindLatestMaintenance walks the vehicle's records newest first and stops
// once created_at drops below the newest one seen; ties keep the highest id.
func (r *WorkOrderDynamoRepository) FindLatestMaintenance(ctx context.Context, vehicleID int64) (entities.MaintenanceRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.maintenanceTable),
		IndexName:              aws.String(maintenanceVehicleIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberN{Value: strconv.FormatInt(vehicleID, 10)},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(maintenanceQueryPageSize),
	})

	var latest entities.MaintenanceRecord
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return entities.MaintenanceRecord{}, err
		}
		for _, raw := range out.Items {
			var it maintenanceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return entities.MaintenanceRecord{}, err
			}
			rec, err := fromMaintenanceItem(it)
			if err != nil {
				return entities.MaintenanceRecord{}, err
			}
			if latest.ID != 0 && rec.CreatedAt.Before(latest.CreatedAt) {
				return latest, nil
			}
			if latest.ID == 0 || rec.Newer(latest) {
				latest = rec
			}
		}
	}
	return latest, nil
}

// FindPartsForMaintenance returns the linked parts ordered by part id.
func (r *WorkOrderDynamoRepository) FindPartsForMaintenance(ctx context.Context, maintenanceID int64) ([]entities.MaintenancePart, error) {
	links, err := r.queryLinks(ctx, maintenanceID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []entities.MaintenancePart{}, nil
	}

	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.PartID)
	}
	parts, err := r.batchGetParts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.MaintenancePart, 0, len(links))
	for _, l := range links {
		p, ok := parts[l.PartID]
		if !ok {
			return nil, fmt.Errorf("part %d linked to maintenance %d not found", l.PartID, maintenanceID)
		}
		result = append(result, entities.MaintenancePart{
			MaintenanceID: l.MaintenanceID,
			PartID:        l.PartID,
			PartName:      p.Name,
			Quantity:      l.Quantity,
			UnitPrice:     p.UnitPrice,
		})
	}
	return result, nil
}

func (r *WorkOrderDynamoRepository) queryLinks(ctx context.Context, maintenanceID int64) ([]maintenancePartItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.maintenancePartsTable),
		KeyConditionExpression: aws.String("maintenance_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberN{Value: strconv.FormatInt(maintenanceID, 10)},
		},
	})

	var links []maintenancePartItem
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		page := make([]maintenancePartItem, 0, len(out.Items))
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		links = append(links, page...)
	}
	return links, nil
}

func (r *WorkOrderDynamoRepository) batchGetParts(ctx context.Context, ids []int64) (map[int64]entities.Part, error) {
	unique := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	parts := make(map[int64]entities.Part, len(unique))
	for start := 0; start < len(unique); start += batchGetMaxKeys {
		end := min(start+batchGetMaxKeys, len(unique))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range unique[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
			})
		}

		request := map[string]types.KeysAndAttributes{
			r.partsTable: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt == batchGetMaxAttempts {
				return nil, ErrUnprocessedKeys
			}
			if attempt > 0 {
				if err := sleepCtx(ctx, time.Duration(attempt)*50*time.Millisecond); err != nil {
					return nil, err
				}
				r.logger.Debug("retrying unprocessed part keys", zap.Int("attempt", attempt))
			}

			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.partsTable] {
				var it partItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				p, err := fromPartItem(it)
				if err != nil {
					return nil, err
				}
				parts[p.ID] = p
			}
			request = out.UnprocessedKeys
		}
	}
	return parts, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func toMaintenanceItem(m entities.MaintenanceRecord) maintenanceItem {
	return maintenanceItem{
		ID:         m.ID,
		VehicleID:  m.VehicleID,
		LaborHours: m.LaborHours.String(),
		LaborRate:  m.LaborRate.String(),
		CreatedAt:  formatTime(m.CreatedAt),
	}
}

func fromMaintenanceItem(it maintenanceItem) (entities.MaintenanceRecord, error) {
	hours, err := parseDecimal("labor_hours", it.LaborHours)
	if err != nil {
		return entities.MaintenanceRecord{}, err
	}
	rate, err := parseDecimal("labor_rate", it.LaborRate)
	if err != nil {
		return entities.MaintenanceRecord{}, err
	}
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.MaintenanceRecord{}, err
	}
	return entities.MaintenanceRecord{
		ID:         it.ID,
		VehicleID:  it.VehicleID,
		LaborHours: hours,
		LaborRate:  rate,
		CreatedAt:  createdAt,
	}, nil
}

func toPartItem(p entities.Part) partItem {
	return partItem{ID: p.ID, Name: p.Name, UnitPrice: p.UnitPrice.String()}
}

func fromPartItem(it partItem) (entities.Part, error) {
	price, err := parseDecimal("unit_price", it.UnitPrice)
	if err != nil {
		return entities.Part{}, err
	}
	return entities.Part{ID: it.ID, Name: it.Name, UnitPrice: price}, nil
}
