package memory

import (
	"context"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
)

// table addresses one collection of the state.
type table[T any] struct {
	store    *Store
	rows     func(st *state) *[]T
	id       func(T) int64
	setID    func(*T, int64)
	clone    func(T) T
	notFound error
}

func (t table[T]) get(ctx context.Context, id int64) (T, error) {
	var out T
	err := t.store.view(ctx, func(st *state) error {
		for _, row := range *t.rows(st) {
			if t.id(row) == id {
				out = t.clone(row)
				return nil
			}
		}
		return t.notFound
	})
	return out, err
}

// getForUpdate is get; inside a transaction the store lock already excludes
// every other writer.
func (t table[T]) getForUpdate(ctx context.Context, id int64) (T, error) {
	return t.get(ctx, id)
}

func (t table[T]) all(ctx context.Context, keep func(T) bool) ([]T, error) {
	out := make([]T, 0)
	err := t.store.view(ctx, func(st *state) error {
		for _, row := range *t.rows(st) {
			if keep == nil || keep(row) {
				out = append(out, t.clone(row))
			}
		}
		return nil
	})
	return out, err
}

func (t table[T]) create(ctx context.Context, row T) (T, error) {
	err := t.store.update(ctx, func(st *state) error {
		rows := t.rows(st)
		var max int64
		for _, r := range *rows {
			if id := t.id(r); id > max {
				max = id
			}
		}
		t.setID(&row, max+1)
		*rows = append(*rows, t.clone(row))
		return nil
	})
	return row, err
}

func (t table[T]) put(ctx context.Context, row T) error {
	return t.store.update(ctx, func(st *state) error {
		rows := *t.rows(st)
		for i := range rows {
			if t.id(rows[i]) == t.id(row) {
				rows[i] = t.clone(row)
				return nil
			}
		}
		return t.notFound
	})
}

// ========== EMPLOYEES ==========

type employeeRepository struct {
	t table[employee.Employee]
}

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepository{t: table[employee.Employee]{
		store:    s,
		rows:     func(st *state) *[]employee.Employee { return &st.employees },
		id:       func(e employee.Employee) int64 { return e.ID },
		setID:    func(e *employee.Employee, id int64) { e.ID = id },
		clone:    cloneEmployee,
		notFound: employee.ErrEmployeeNotFound,
	}}
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return r.t.get(ctx, id)
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return r.t.all(ctx, nil)
}

// ========== LEAVES ==========

type leaveRepository struct {
	t table[leave.Leave]
}

func NewLeaveRepository(s *Store) leave.LeaveRepository {
	return &leaveRepository{t: table[leave.Leave]{
		store:    s,
		rows:     func(st *state) *[]leave.Leave { return &st.leaves },
		id:       func(l leave.Leave) int64 { return l.ID },
		setID:    func(l *leave.Leave, id int64) { l.ID = id },
		clone:    cloneLeave,
		notFound: leave.ErrLeaveRequestNotFound,
	}}
}

func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	return r.t.create(ctx, l)
}

func (r *leaveRepository) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	return r.t.get(ctx, id)
}

func (r *leaveRepository) GetByIDForUpdate(ctx context.Context, id int64) (leave.Leave, error) {
	return r.t.getForUpdate(ctx, id)
}

func (r *leaveRepository) List(ctx context.Context) ([]leave.Leave, error) {
	return r.t.all(ctx, nil)
}

func (r *leaveRepository) Update(ctx context.Context, l leave.Leave) error {
	return r.t.put(ctx, l)
}

// ========== PAYROLL ==========

type payrollRepository struct {
	t table[payroll.Payroll]
}

func NewPayrollRepository(s *Store) payroll.PayrollRepository {
	return &payrollRepository{t: table[payroll.Payroll]{
		store:    s,
		rows:     func(st *state) *[]payroll.Payroll { return &st.payrolls },
		id:       func(p payroll.Payroll) int64 { return p.ID },
		setID:    func(p *payroll.Payroll, id int64) { p.ID = id },
		clone:    clonePayroll,
		notFound: payroll.ErrPayrollRecordNotFound,
	}}
}

func (r *payrollRepository) GetByID(ctx context.Context, id int64) (payroll.Payroll, error) {
	return r.t.get(ctx, id)
}

func (r *payrollRepository) List(ctx context.Context) ([]payroll.Payroll, error) {
	return r.t.all(ctx, nil)
}

// ========== TRAININGS ==========

type trainingRepository struct {
	t table[training.Training]
}

func NewTrainingRepository(s *Store) training.TrainingRepository {
	return &trainingRepository{t: table[training.Training]{
		store:    s,
		rows:     func(st *state) *[]training.Training { return &st.trainings },
		id:       func(t training.Training) int64 { return t.ID },
		setID:    func(t *training.Training, id int64) { t.ID = id },
		clone:    cloneTraining,
		notFound: training.ErrTrainingNotFound,
	}}
}

func (r *trainingRepository) GetByID(ctx context.Context, id int64) (training.Training, error) {
	return r.t.get(ctx, id)
}

func (r *trainingRepository) GetByIDForUpdate(ctx context.Context, id int64) (training.Training, error) {
	return r.t.getForUpdate(ctx, id)
}

func (r *trainingRepository) List(ctx context.Context) ([]training.Training, error) {
	return r.t.all(ctx, nil)
}

func (r *trainingRepository) Update(ctx context.Context, t training.Training) error {
	return r.t.put(ctx, t)
}

// ========== ASSETS ==========

type assetRepository struct {
	t table[asset.Asset]
}

func NewAssetRepository(s *Store) asset.AssetRepository {
	return &assetRepository{t: table[asset.Asset]{
		store:    s,
		rows:     func(st *state) *[]asset.Asset { return &st.assets },
		id:       func(a asset.Asset) int64 { return a.ID },
		setID:    func(a *asset.Asset, id int64) { a.ID = id },
		clone:    cloneAsset,
		notFound: asset.ErrAssetNotFound,
	}}
}

func (r *assetRepository) GetByID(ctx context.Context, id int64) (asset.Asset, error) {
	return r.t.get(ctx, id)
}

func (r *assetRepository) GetByIDForUpdate(ctx context.Context, id int64) (asset.Asset, error) {
	return r.t.getForUpdate(ctx, id)
}

func (r *assetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	return r.t.all(ctx, nil)
}

func (r *assetRepository) Update(ctx context.Context, a asset.Asset) error {
	return r.t.put(ctx, a)
}

type assignmentRepository struct {
	t table[asset.AssetAssignment]
}

func NewAssignmentRepository(s *Store) asset.AssignmentRepository {
	return &assignmentRepository{t: table[asset.AssetAssignment]{
		store:    s,
		rows:     func(st *state) *[]asset.AssetAssignment { return &st.assignments },
		id:       func(a asset.AssetAssignment) int64 { return a.ID },
		setID:    func(a *asset.AssetAssignment, id int64) { a.ID = id },
		clone:    cloneAssignment,
		notFound: asset.ErrAssignmentNotFound,
	}}
}

func (r *assignmentRepository) Create(ctx context.Context, a asset.AssetAssignment) (asset.AssetAssignment, error) {
	return r.t.create(ctx, a)
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int64) (asset.AssetAssignment, error) {
	return r.t.get(ctx, id)
}

func (r *assignmentRepository) GetByIDForUpdate(ctx context.Context, id int64) (asset.AssetAssignment, error) {
	return r.t.getForUpdate(ctx, id)
}

func (r *assignmentRepository) List(ctx context.Context) ([]asset.AssetAssignment, error) {
	return r.t.all(ctx, nil)
}

func (r *assignmentRepository) ListByAsset(ctx context.Context, assetID int64) ([]asset.AssetAssignment, error) {
	return r.t.all(ctx, func(a asset.AssetAssignment) bool { return a.AssetID == assetID })
}

func (r *assignmentRepository) Update(ctx context.Context, a asset.AssetAssignment) error {
	return r.t.put(ctx, a)
}

type maintenanceRepository struct {
	t table[asset.MaintenanceLog]
}

func NewMaintenanceRepository(s *Store) asset.MaintenanceRepository {
	return &maintenanceRepository{t: table[asset.MaintenanceLog]{
		store:    s,
		rows:     func(st *state) *[]asset.MaintenanceLog { return &st.maintenance },
		id:       func(m asset.MaintenanceLog) int64 { return m.ID },
		setID:    func(m *asset.MaintenanceLog, id int64) { m.ID = id },
		clone:    cloneMaintenance,
		notFound: asset.ErrMaintenanceNotFound,
	}}
}

func (r *maintenanceRepository) Create(ctx context.Context, m asset.MaintenanceLog) (asset.MaintenanceLog, error) {
	return r.t.create(ctx, m)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int64) (asset.MaintenanceLog, error) {
	return r.t.get(ctx, id)
}

func (r *maintenanceRepository) GetByIDForUpdate(ctx context.Context, id int64) (asset.MaintenanceLog, error) {
	return r.t.getForUpdate(ctx, id)
}

func (r *maintenanceRepository) List(ctx context.Context) ([]asset.MaintenanceLog, error) {
	return r.t.all(ctx, nil)
}

func (r *maintenanceRepository) ListByAsset(ctx context.Context, assetID int64) ([]asset.MaintenanceLog, error) {
	return r.t.all(ctx, func(m asset.MaintenanceLog) bool { return m.AssetID == assetID })
}

func (r *maintenanceRepository) Update(ctx context.Context, m asset.MaintenanceLog) error {
	return r.t.put(ctx, m)
}
