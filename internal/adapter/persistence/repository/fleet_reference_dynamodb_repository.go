package repository

import (
	"context"

	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultDocumentsTableName   = "vehicle_documents"
	defaultMaintenanceTableName = "maintenance_tasks"
)

type vehicleDocumentItem struct {
	ID          string `dynamodbav:"id"`
	Patente     string `dynamodbav:"patente"`
	Tipo        string `dynamodbav:"tipo"`
	Responsable string `dynamodbav:"responsable,omitempty"`
	Vence       string `dynamodbav:"vence,omitempty"`
}

type maintenanceTaskItem struct {
	ID           string `dynamodbav:"id"`
	Tarea        string `dynamodbav:"tarea"`
	Patente      string `dynamodbav:"patente"`
	TipoControl  string `dynamodbav:"tipo_control"`
	ProximaFecha string `dynamodbav:"proxima_fecha,omitempty"`
	ProximoKm    int    `dynamodbav:"proximo_km,omitempty"`
	KmActual     int    `dynamodbav:"km_actual,omitempty"`
}

// FleetReferenceDynamoRepository reads the per-vehicle reference tables the
// dashboard classifies. Both tables are maintained outside this service; this
// repository only scans them.

type FleetReferenceDynamoRepository struct {
	ddb              *dynamodb.Client
	documentsTable   string
	maintenanceTable string
}

var _ interfaces.IFleetReferenceProvider = (*FleetReferenceDynamoRepository)(nil)

func NewFleetReferenceDynamoRepository(ddb *dynamodb.Client) *FleetReferenceDynamoRepository {
	return &FleetReferenceDynamoRepository{
		ddb:              ddb,
		documentsTable:   getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
		maintenanceTable: getenvDefault("MAINTENANCE_TABLE", defaultMaintenanceTableName),
	}
}

func (r *FleetReferenceDynamoRepository) ListDocuments(ctx context.Context) ([]entities.VehicleDocument, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.documentsTable),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.VehicleDocument, 0, len(out.Items))
	for _, raw := range out.Items {
		var it vehicleDocumentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.VehicleDocument{
			ID:          it.ID,
			Patente:     it.Patente,
			Tipo:        it.Tipo,
			Responsable: it.Responsable,
			Vence:       it.Vence,
		})
	}
	return items, nil
}

func (r *FleetReferenceDynamoRepository) ListMaintenanceTasks(ctx context.Context) ([]entities.MaintenanceTask, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.maintenanceTable),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.MaintenanceTask, 0, len(out.Items))
	for _, raw := range out.Items {
		var it maintenanceTaskItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.MaintenanceTask{
			ID:           it.ID,
			Tarea:        it.Tarea,
			Patente:      it.Patente,
			TipoControl:  entities.ControlType(it.TipoControl),
			ProximaFecha: it.ProximaFecha,
			ProximoKm:    it.ProximoKm,
			KmActual:     it.KmActual,
		})
	}
	return items, nil
}
