package repository

import (
	"context"
	"errors"
	"time"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

type orderSnapshotItem struct {
	ID             string  `dynamodbav:"id"`
	Titulo         string  `dynamodbav:"titulo"`
	Patente        string  `dynamodbav:"patente"`
	Mecanico       string  `dynamodbav:"mecanico"`
	ProveedorID    string  `dynamodbav:"proveedor_id"`
	Prioridad      string  `dynamodbav:"prioridad"`
	FechaSolicitud string  `dynamodbav:"fecha_solicitud"`
	TotalCosto     float64 `dynamodbav:"total_costo"`
}

type budgetItem struct {
	ID          string            `dynamodbav:"id"`
	OrderID     string            `dynamodbav:"order_id"`
	Monto       float64           `dynamodbav:"monto"`
	Estado      string            `dynamodbav:"estado"`
	Observacion string            `dynamodbav:"observacion,omitempty"`
	Order       orderSnapshotItem `dynamodbav:"order"`
	CreatedAt   string            `dynamodbav:"created_at"`
	UpdatedAt   string            `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The order snapshot is stored inline in the item; it is a copy taken at
// generation time and never refreshed from the order table.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Budget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBudgetItem(it))
	}
	return items, nil
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:          b.ID,
		OrderID:     b.OrderID,
		Monto:       b.Monto,
		Estado:      string(b.Estado),
		Observacion: b.Observacion,
		Order: orderSnapshotItem{
			ID:             b.Order.ID,
			Titulo:         b.Order.Titulo,
			Patente:        b.Order.Patente,
			Mecanico:       b.Order.Mecanico,
			ProveedorID:    b.Order.ProveedorID,
			Prioridad:      string(b.Order.Prioridad),
			FechaSolicitud: b.Order.FechaSolicitud,
			TotalCosto:     b.Order.TotalCosto,
		},
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Budget{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Monto:       it.Monto,
		Estado:      entities.BudgetStatus(it.Estado),
		Observacion: it.Observacion,
		Order: entities.OrderSnapshot{
			ID:             it.Order.ID,
			Titulo:         it.Order.Titulo,
			Patente:        it.Order.Patente,
			Mecanico:       it.Order.Mecanico,
			ProveedorID:    it.Order.ProveedorID,
			Prioridad:      entities.OrderPriority(it.Order.Prioridad),
			FechaSolicitud: it.Order.FechaSolicitud,
			TotalCosto:     it.Order.TotalCosto,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
