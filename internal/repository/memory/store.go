// Package memory is an in-process store used when no database is
// configured. Writers are serialised by one mutex; a transaction holds it for
// its whole duration and restores the previous state when it fails.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/benefit"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/performance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/service/catalog"
)

type state struct {
	employees   []employee.Employee
	leaves      []leave.Leave
	timeLogs    []attendance.TimeLog
	payrolls    []payroll.Payroll
	candidates  []recruitment.Candidate
	performance []performance.Performance
	trainings   []training.Training
	benefits    []benefit.Benefits
	assets      []asset.Asset
	assignments []asset.AssetAssignment
	maintenance []asset.MaintenanceLog
}

// clone copies every collection so later writes cannot reach the copy.
func (s *state) clone() *state {
	return &state{
		employees:   cloneAll(s.employees, cloneEmployee),
		leaves:      cloneAll(s.leaves, cloneLeave),
		timeLogs:    cloneAll(s.timeLogs, cloneTimeLog),
		payrolls:    cloneAll(s.payrolls, clonePayroll),
		candidates:  cloneAll(s.candidates, cloneCandidate),
		performance: cloneAll(s.performance, clonePerformance),
		trainings:   cloneAll(s.trainings, cloneTraining),
		benefits:    cloneAll(s.benefits, cloneBenefits),
		assets:      cloneAll(s.assets, cloneAsset),
		assignments: cloneAll(s.assignments, cloneAssignment),
		maintenance: cloneAll(s.maintenance, cloneMaintenance),
	}
}

type Store struct {
	mu    sync.RWMutex
	state *state
}

type txKey struct{}

func NewStore() *Store {
	return &Store{state: &state{}}
}

// Seed replaces the store contents with every collection of src.
func (s *Store) Seed(ctx context.Context, src catalog.Source) error {
	next := &state{}
	var err error
	if next.employees, err = src.ListEmployees(ctx); err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	if next.leaves, err = src.ListLeaves(ctx); err != nil {
		return fmt.Errorf("seed leaves: %w", err)
	}
	if next.timeLogs, err = src.ListTimeLogs(ctx); err != nil {
		return fmt.Errorf("seed time logs: %w", err)
	}
	if next.payrolls, err = src.ListPayrolls(ctx); err != nil {
		return fmt.Errorf("seed payroll: %w", err)
	}
	if next.candidates, err = src.ListCandidates(ctx); err != nil {
		return fmt.Errorf("seed candidates: %w", err)
	}
	if next.performance, err = src.ListPerformance(ctx); err != nil {
		return fmt.Errorf("seed performance: %w", err)
	}
	if next.trainings, err = src.ListTrainings(ctx); err != nil {
		return fmt.Errorf("seed trainings: %w", err)
	}
	if next.benefits, err = src.ListBenefits(ctx); err != nil {
		return fmt.Errorf("seed benefits: %w", err)
	}
	if next.assets, err = src.ListAssets(ctx); err != nil {
		return fmt.Errorf("seed assets: %w", err)
	}
	if next.assignments, err = src.ListAssetAssignments(ctx); err != nil {
		return fmt.Errorf("seed asset assignments: %w", err)
	}
	if next.maintenance, err = src.ListMaintenanceLogs(ctx); err != nil {
		return fmt.Errorf("seed maintenance logs: %w", err)
	}

	s.mu.Lock()
	s.state = next.clone()
	s.mu.Unlock()
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// WithinTransaction implements database.Transactor.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.state.clone()
	defer func() {
		if p := recover(); p != nil {
			s.state = saved
			panic(p)
		}
		if err != nil {
			s.state = saved
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, s))
}

// view runs fn under the read lock unless ctx already holds the store.
func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.inTx(ctx) {
		return fn(s.state)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// update runs fn under the write lock unless ctx already holds the store.
func (s *Store) update(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.inTx(ctx) {
		return fn(s.state)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// Ping always succeeds; the store lives in process.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func list[T any](ctx context.Context, s *Store, items func(st *state) []T, clone func(T) T) ([]T, error) {
	var out []T
	err := s.view(ctx, func(st *state) error {
		out = cloneAll(items(st), clone)
		return nil
	})
	return out, err
}

func (s *Store) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return list(ctx, s, func(st *state) []employee.Employee { return st.employees }, cloneEmployee)
}

func (s *Store) ListLeaves(ctx context.Context) ([]leave.Leave, error) {
	return list(ctx, s, func(st *state) []leave.Leave { return st.leaves }, cloneLeave)
}

func (s *Store) ListTimeLogs(ctx context.Context) ([]attendance.TimeLog, error) {
	return list(ctx, s, func(st *state) []attendance.TimeLog { return st.timeLogs }, cloneTimeLog)
}

func (s *Store) ListPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	return list(ctx, s, func(st *state) []payroll.Payroll { return st.payrolls }, clonePayroll)
}

func (s *Store) ListCandidates(ctx context.Context) ([]recruitment.Candidate, error) {
	return list(ctx, s, func(st *state) []recruitment.Candidate { return st.candidates }, cloneCandidate)
}

func (s *Store) ListPerformance(ctx context.Context) ([]performance.Performance, error) {
	return list(ctx, s, func(st *state) []performance.Performance { return st.performance }, clonePerformance)
}

func (s *Store) ListTrainings(ctx context.Context) ([]training.Training, error) {
	return list(ctx, s, func(st *state) []training.Training { return st.trainings }, cloneTraining)
}

func (s *Store) ListBenefits(ctx context.Context) ([]benefit.Benefits, error) {
	return list(ctx, s, func(st *state) []benefit.Benefits { return st.benefits }, cloneBenefits)
}

func (s *Store) ListAssets(ctx context.Context) ([]asset.Asset, error) {
	return list(ctx, s, func(st *state) []asset.Asset { return st.assets }, cloneAsset)
}

func (s *Store) ListAssetAssignments(ctx context.Context) ([]asset.AssetAssignment, error) {
	return list(ctx, s, func(st *state) []asset.AssetAssignment { return st.assignments }, cloneAssignment)
}

func (s *Store) ListMaintenanceLogs(ctx context.Context) ([]asset.MaintenanceLog, error) {
	return list(ctx, s, func(st *state) []asset.MaintenanceLog { return st.maintenance }, cloneMaintenance)
}

var _ catalog.Source = (*Store)(nil)
