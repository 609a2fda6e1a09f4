package asset

import "context"

type AssetService interface {
	Assign(ctx context.Context, req AssignAssetRequest) (AssetAssignment, error)
	Return(ctx context.Context, req ReturnAssetRequest) (AssetAssignment, error)

	ScheduleMaintenance(ctx context.Context, req ScheduleMaintenanceRequest) (MaintenanceLog, error)
	StartMaintenance(ctx context.Context, logID int64) (MaintenanceLog, error)
	CompleteMaintenance(ctx context.Context, req CompleteMaintenanceRequest) (MaintenanceLog, error)
	CancelMaintenance(ctx context.Context, logID int64, reason string) (MaintenanceLog, error)
	FailMaintenance(ctx context.Context, logID int64, notes string) (MaintenanceLog, error)

	Get(ctx context.Context, id int64) (Asset, error)
	GetDetail(ctx context.Context, id int64) (Detail, error)
	ListAssignments(ctx context.Context, assetID int64) ([]AssetAssignment, error)
	ListMaintenance(ctx context.Context, assetID int64) ([]MaintenanceLog, error)
}
