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

const defaultOrdersTableName = "work_orders"

type orderPartItem struct {
	Nombre   string  `dynamodbav:"nombre"`
	Cantidad int     `dynamodbav:"cantidad"`
	Costo    float64 `dynamodbav:"costo"`
}

type orderItem struct {
	ID             string          `dynamodbav:"id"`
	Titulo         string          `dynamodbav:"titulo"`
	Patente        string          `dynamodbav:"patente"`
	Mecanico       string          `dynamodbav:"mecanico"`
	Conductor      string          `dynamodbav:"conductor,omitempty"`
	ProveedorID    string          `dynamodbav:"proveedor_id"`
	Prioridad      string          `dynamodbav:"prioridad"`
	Estado         string          `dynamodbav:"estado"`
	Descripcion    string          `dynamodbav:"descripcion,omitempty"`
	FechaSolicitud string          `dynamodbav:"fecha_solicitud"`
	Repuestos      []orderPartItem `dynamodbav:"repuestos"`
	TotalCosto     float64         `dynamodbav:"total_costo"`
	CreatedAt      string          `dynamodbav:"created_at"`
	UpdatedAt      string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List is a full Scan: the fleet holds at most a few thousand open orders,
// well under a single Scan page.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItem(it))
	}
	return items, nil
}

// Update replaces the whole item. The usecase layer reads, patches and writes
// back, so a full Put with an existence condition keeps the round trip simple.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toOrderItem(o entities.Order) orderItem {
	parts := make([]orderPartItem, 0, len(o.Repuestos))
	for _, p := range o.Repuestos {
		parts = append(parts, orderPartItem{Nombre: p.Nombre, Cantidad: p.Cantidad, Costo: p.Costo})
	}
	return orderItem{
		ID:             o.ID,
		Titulo:         o.Titulo,
		Patente:        o.Patente,
		Mecanico:       o.Mecanico,
		Conductor:      o.Conductor,
		ProveedorID:    o.ProveedorID,
		Prioridad:      string(o.Prioridad),
		Estado:         string(o.Estado),
		Descripcion:    o.Descripcion,
		FechaSolicitud: o.FechaSolicitud,
		Repuestos:      parts,
		TotalCosto:     o.TotalCosto,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	parts := make([]entities.PartItem, 0, len(it.Repuestos))
	for _, p := range it.Repuestos {
		parts = append(parts, entities.PartItem{Nombre: p.Nombre, Cantidad: p.Cantidad, Costo: p.Costo})
	}
	return entities.Order{
		ID:             it.ID,
		Titulo:         it.Titulo,
		Patente:        it.Patente,
		Mecanico:       it.Mecanico,
		Conductor:      it.Conductor,
		ProveedorID:    it.ProveedorID,
		Prioridad:      entities.OrderPriority(it.Prioridad),
		Estado:         entities.OrderStatus(it.Estado),
		Descripcion:    it.Descripcion,
		FechaSolicitud: it.FechaSolicitud,
		Repuestos:      parts,
		TotalCosto:     it.TotalCosto,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
