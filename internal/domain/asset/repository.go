package asset

import "context"

// The ForUpdate variants lock the row until the surrounding transaction
// ends. Workflows lock the asset before its assignments or logs.

type AssetRepository interface {
	GetByID(ctx context.Context, id int64) (Asset, error)
	GetByIDForUpdate(ctx context.Context, id int64) (Asset, error)
	List(ctx context.Context) ([]Asset, error)
	Update(ctx context.Context, asset Asset) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment AssetAssignment) (AssetAssignment, error)
	GetByID(ctx context.Context, id int64) (AssetAssignment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (AssetAssignment, error)
	List(ctx context.Context) ([]AssetAssignment, error)
	ListByAsset(ctx context.Context, assetID int64) ([]AssetAssignment, error)
	Update(ctx context.Context, assignment AssetAssignment) error
}

type MaintenanceRepository interface {
	Create(ctx context.Context, log MaintenanceLog) (MaintenanceLog, error)
	GetByID(ctx context.Context, id int64) (MaintenanceLog, error)
	GetByIDForUpdate(ctx context.Context, id int64) (MaintenanceLog, error)
	List(ctx context.Context) ([]MaintenanceLog, error)
	ListByAsset(ctx context.Context, assetID int64) ([]MaintenanceLog, error)
	Update(ctx context.Context, log MaintenanceLog) error
}
