package interfaces

import (
	"context"
	"gestion_flota/internal/domain/entities"
)

// IFleetReferenceProvider exposes the per-vehicle reference data the report
// aggregator classifies: document expiries and scheduled maintenance tasks.
// The provider owns these records; the aggregator only reads them.

type IFleetReferenceProvider interface {
	ListDocuments(ctx context.Context) ([]entities.VehicleDocument, error)
	ListMaintenanceTasks(ctx context.Context) ([]entities.MaintenanceTask, error)
}
