package postgresql

import (
	"context"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/database"
)

// ========== EMPLOYEES ==========

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return employees.get(ctx, r.db, id, false)
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return employees.list(ctx, r.db, "")
}

// ========== LEAVES ==========

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	id, err := leaves.create(ctx, r.db, l)
	if err != nil {
		return leave.Leave{}, err
	}
	l.ID = id
	return l, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	return leaves.get(ctx, r.db, id, false)
}

func (r *leaveRepository) GetByIDForUpdate(ctx context.Context, id int64) (leave.Leave, error) {
	return leaves.get(ctx, r.db, id, true)
}

func (r *leaveRepository) List(ctx context.Context) ([]leave.Leave, error) {
	return leaves.list(ctx, r.db, "")
}

func (r *leaveRepository) Update(ctx context.Context, l leave.Leave) error {
	return leaves.update(ctx, r.db, l)
}

// ========== PAYROLL ==========

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) GetByID(ctx context.Context, id int64) (payroll.Payroll, error) {
	return payrolls.get(ctx, r.db, id, false)
}

func (r *payrollRepository) List(ctx context.Context) ([]payroll.Payroll, error) {
	return payrolls.list(ctx, r.db, "")
}

// ========== TRAININGS ==========

type trainingRepository struct {
	db *database.DB
}

func NewTrainingRepository(db *database.DB) training.TrainingRepository {
	return &trainingRepository{db: db}
}

func (r *trainingRepository) GetByID(ctx context.Context, id int64) (training.Training, error) {
	return trainings.get(ctx, r.db, id, false)
}

func (r *trainingRepository) GetByIDForUpdate(ctx context.Context, id int64) (training.Training, error) {
	return trainings.get(ctx, r.db, id, true)
}

func (r *trainingRepository) List(ctx context.Context) ([]training.Training, error) {
	return trainings.list(ctx, r.db, "")
}

func (r *trainingRepository) Update(ctx context.Context, t training.Training) error {
	return trainings.update(ctx, r.db, t)
}

// ========== ASSETS ==========

type assetRepository struct {
	db *database.DB
}

func NewAssetRepository(db *database.DB) asset.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) GetByID(ctx context.Context, id int64) (asset.Asset, error) {
	return assets.get(ctx, r.db, id, false)
}

func (r *assetRepository) GetByIDForUpdate(ctx context.Context, id int64) (asset.Asset, error) {
	return assets.get(ctx, r.db, id, true)
}

func (r *assetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	return assets.list(ctx, r.db, "")
}

func (r *assetRepository) Update(ctx context.Context, a asset.Asset) error {
	return assets.update(ctx, r.db, a)
}

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) asset.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, a asset.AssetAssignment) (asset.AssetAssignment, error) {
	id, err := assignments.create(ctx, r.db, a)
	if err != nil {
		return asset.AssetAssignment{}, err
	}
	a.ID = id
	return a, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int64) (asset.AssetAssignment, error) {
	return assignments.get(ctx, r.db, id, false)
}

func (r *assignmentRepository) GetByIDForUpdate(ctx context.Context, id int64) (asset.AssetAssignment, error) {
	return assignments.get(ctx, r.db, id, true)
}

func (r *assignmentRepository) List(ctx context.Context) ([]asset.AssetAssignment, error) {
	return assignments.list(ctx, r.db, "")
}

func (r *assignmentRepository) ListByAsset(ctx context.Context, assetID int64) ([]asset.AssetAssignment, error) {
	return assignments.list(ctx, r.db, "asset_id = $1", assetID)
}

func (r *assignmentRepository) Update(ctx context.Context, a asset.AssetAssignment) error {
	return assignments.update(ctx, r.db, a)
}

type maintenanceRepository struct {
	db *database.DB
}

func NewMaintenanceRepository(db *database.DB) asset.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, m asset.MaintenanceLog) (asset.MaintenanceLog, error) {
	id, err := maintenanceLogs.create(ctx, r.db, m)
	if err != nil {
		return asset.MaintenanceLog{}, err
	}
	m.ID = id
	return m, nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int64) (asset.MaintenanceLog, error) {
	return maintenanceLogs.get(ctx, r.db, id, false)
}

func (r *maintenanceRepository) GetByIDForUpdate(ctx context.Context, id int64) (asset.MaintenanceLog, error) {
	return maintenanceLogs.get(ctx, r.db, id, true)
}

func (r *maintenanceRepository) List(ctx context.Context) ([]asset.MaintenanceLog, error) {
	return maintenanceLogs.list(ctx, r.db, "")
}

func (r *maintenanceRepository) ListByAsset(ctx context.Context, assetID int64) ([]asset.MaintenanceLog, error) {
	return maintenanceLogs.list(ctx, r.db, "asset_id = $1", assetID)
}

func (r *maintenanceRepository) Update(ctx context.Context, m asset.MaintenanceLog) error {
	return maintenanceLogs.update(ctx, r.db, m)
}
