package repository

import (
	"context"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	annualBudgetSingletonKey = "annual_budget"
)

type annualBudgetItem struct {
	ID               string  `dynamodbav:"id"`
	PresupuestoAnual float64 `dynamodbav:"presupuesto_anual"`
}

// AnnualBudgetDynamoRepository stores the annual cap as a singleton item
// under a fixed key in the settings table. Get on an empty table returns the
// zero value, meaning no cap has been configured yet.

type AnnualBudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAnnualBudgetRepository = (*AnnualBudgetDynamoRepository)(nil)

func NewAnnualBudgetDynamoRepository(ddb *dynamodb.Client) *AnnualBudgetDynamoRepository {
	return &AnnualBudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *AnnualBudgetDynamoRepository) Get(ctx context.Context) (entities.AnnualBudget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: annualBudgetSingletonKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AnnualBudget{}, err
	}
	if len(out.Item) == 0 {
		return entities.AnnualBudget{}, nil
	}

	var it annualBudgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AnnualBudget{}, err
	}
	return entities.AnnualBudget{PresupuestoAnual: it.PresupuestoAnual}, nil
}

// Put overwrites the singleton unconditionally: setting the cap is a
// replace, never a create-once.
func (r *AnnualBudgetDynamoRepository) Put(ctx context.Context, b entities.AnnualBudget) (entities.AnnualBudget, error) {
	av, err := attributevalue.MarshalMap(annualBudgetItem{
		ID:               annualBudgetSingletonKey,
		PresupuestoAnual: b.PresupuestoAnual,
	})
	if err != nil {
		return entities.AnnualBudget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.AnnualBudget{}, err
	}
	return b, nil
}
