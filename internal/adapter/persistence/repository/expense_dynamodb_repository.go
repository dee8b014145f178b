package repository

import (
	"context"
	"time"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultExpensesTableName = "expenses"

type expenseItem struct {
	ID          string  `dynamodbav:"id"`
	Patente     string  `dynamodbav:"patente"`
	Concepto    string  `dynamodbav:"concepto"`
	Costo       float64 `dynamodbav:"costo"`
	Fecha       string  `dynamodbav:"fecha"`
	ProveedorID string  `dynamodbav:"proveedor_id,omitempty"`
	BoletaPath  string  `dynamodbav:"boleta_path,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The ledger is append-only, so only Put and Scan are needed.

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	it := toExpenseItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Expense{}, err
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
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Expense, 0, len(out.Items))
	for _, raw := range out.Items {
		var it expenseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromExpenseItem(it))
	}
	return items, nil
}

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:          e.ID,
		Patente:     e.Patente,
		Concepto:    e.Concepto,
		Costo:       e.Costo,
		Fecha:       e.Fecha,
		ProveedorID: e.ProveedorID,
		BoletaPath:  e.BoletaPath,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Expense{
		ID:          it.ID,
		Patente:     it.Patente,
		Concepto:    it.Concepto,
		Costo:       it.Costo,
		Fecha:       it.Fecha,
		ProveedorID: it.ProveedorID,
		BoletaPath:  it.BoletaPath,
		CreatedAt:   createdAt,
	}
}
