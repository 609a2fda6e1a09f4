package http

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/benefit"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/fixture"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	assetService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/service/catalog"
	dashboardService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/dashboard"
	leaveService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/report"
	trainingService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/training"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

type testServer struct {
	handler http.Handler
	hub     *sse.Hub
}

func newTestServer(t *testing.T) testServer {
	return newTestServerWithPrimary(t, func(store *memory.Store) catalog.Source { return store })
}

// newTestServerWithPrimary serves reads from the source primary builds over
// the seeded store, with the embedded fixtures as fallback.
func newTestServerWithPrimary(t *testing.T, primary func(store *memory.Store) catalog.Source) testServer {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background(), fixture.NewEmbedded()))

	files, err := storage.NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)

	hub := sse.NewHub()
	c := catalog.New(primary(store), fixture.NewEmbedded())
	employees := memory.NewEmployeeRepository(store)

	dashboards := dashboardService.NewDashboardService(c, 30).WithClock(fixedNow)
	handlers := Handlers{
		Employee: NewEmployeeHandler(dashboards),
		Leave: NewLeaveHandler(leaveService.NewLeaveService(
			store, memory.NewLeaveRepository(store), employees, hub).WithClock(fixedNow), c),
		Asset: NewAssetHandler(assetService.NewAssetService(
			store,
			memory.NewAssetRepository(store),
			memory.NewAssignmentRepository(store),
			memory.NewMaintenanceRepository(store),
			employees,
			hub,
		).WithClock(fixedNow), c),
		Training: NewTrainingHandler(trainingService.NewTrainingService(
			store, memory.NewTrainingRepository(store), employees, hub).WithClock(fixedNow), c),
		Record:    NewRecordHandler(c),
		Dashboard: NewDashboardHandler(dashboards),
		Report: NewReportHandler(reportService.NewReportService(
			c, memory.NewPayrollRepository(store), files, 30).WithClock(fixedNow)),
		File:  NewFileHandler(files),
		Event: NewEventHandler(hub),
	}

	router := NewRouter(RouterOptions{
		AppName:        "hr-dashboard-test",
		Env:            "test",
		AllowedOrigins: []string{"*"},
	}, handlers, c)
	return testServer{handler: router, hub: hub}
}

func (s testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	return *body.Error
}

func TestHealthAndReadiness(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/readyz", "").Code)
}

// unreachable stands in for a primary store whose connection is gone.
type unreachable struct{ catalog.Source }

var errUnreachable = errors.New("connection refused")

func (unreachable) ListEmployees(context.Context) ([]employee.Employee, error) {
	return nil, errUnreachable
}
func (unreachable) ListLeaves(context.Context) ([]leave.Leave, error) { return nil, errUnreachable }
func (unreachable) ListTrainings(context.Context) ([]training.Training, error) {
	return nil, errUnreachable
}
func (unreachable) ListAssets(context.Context) ([]asset.Asset, error) { return nil, errUnreachable }

func TestListsFallBackToFixtures(t *testing.T) {
	s := newTestServerWithPrimary(t, func(store *memory.Store) catalog.Source {
		return unreachable{Source: store}
	})
	ctx := context.Background()
	fixtures := fixture.NewEmbedded()

	wantLeaves, err := fixtures.ListLeaves(ctx)
	require.NoError(t, err)
	wantAssets, err := fixtures.ListAssets(ctx)
	require.NoError(t, err)
	wantTrainings, err := fixtures.ListTrainings(ctx)
	require.NoError(t, err)
	wantEmployees, err := fixtures.ListEmployees(ctx)
	require.NoError(t, err)

	tests := []struct {
		path string
		want int
	}{
		{"/api/v1/leaves", len(wantLeaves)},
		{"/api/v1/assets", len(wantAssets)},
		{"/api/v1/trainings", len(wantTrainings)},
		{"/api/v1/employees", len(wantEmployees)},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var items []json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
			assert.Len(t, items, tt.want)
		})
	}

	rec := s.do(t, http.MethodGet, "/api/v1/assets?status=assigned", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var assigned []asset.Asset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assigned))
	assert.Len(t, assigned, 5)

	assert.Equal(t, http.StatusServiceUnavailable, s.do(t, http.MethodGet, "/readyz", "").Code)
}

// staleBenefits reports zeroed totals, as a record written before a plan
// changed would.
type staleBenefits struct{ catalog.Source }

func (s staleBenefits) ListBenefits(ctx context.Context) ([]benefit.Benefits, error) {
	records, err := s.Source.ListBenefits(ctx)
	for i := range records {
		records[i].TotalMonthlyCost = decimal.Zero
		records[i].EmployeeTotalContribution = decimal.Zero
		records[i].CompanyTotalContribution = decimal.Zero
	}
	return records, err
}

func TestBenefitsListRecalculatesTotals(t *testing.T) {
	s := newTestServerWithPrimary(t, func(store *memory.Store) catalog.Source {
		return staleBenefits{Source: store}
	})

	rec := s.do(t, http.MethodGet, "/api/v1/benefits", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var records []benefit.Benefits
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.NotEmpty(t, records)
	for _, b := range records {
		want := benefit.Recalculate(b)
		assert.True(t, want.TotalMonthlyCost.Equal(b.TotalMonthlyCost), "benefits %d", b.ID)
		assert.True(t, want.CompanyTotalContribution.Equal(b.CompanyTotalContribution), "benefits %d", b.ID)
		if b.HasActive() {
			assert.True(t, b.TotalMonthlyCost.IsPositive(), "benefits %d", b.ID)
		}
	}
}

func TestListEndpointsReturnArrays(t *testing.T) {
	s := newTestServer(t)

	paths := []string{
		"/api/v1/employees", "/api/v1/leaves", "/api/v1/time-logs", "/api/v1/payroll",
		"/api/v1/candidates", "/api/v1/performance", "/api/v1/trainings", "/api/v1/benefits",
		"/api/v1/assets", "/api/v1/asset-assignments", "/api/v1/maintenance-logs",
	}
	for _, path := range paths {
		rec := s.do(t, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)

		var items []json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items), path)
		assert.NotEmpty(t, items, path)
	}
}

func TestListFilters(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/assets?status=Assigned", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var assets []asset.Asset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assets))
	assert.Len(t, assets, 5)

	rec = s.do(t, http.MethodGet, "/api/v1/leaves?status=Pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var leaves []leave.Leave
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leaves))
	for _, l := range leaves {
		assert.Equal(t, leave.StatusPending, l.Status)
	}

	rec = s.do(t, http.MethodGet, "/api/v1/leaves?employee_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/maintenance-logs?asset_id=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var logs []asset.MaintenanceLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	for _, l := range logs {
		assert.Equal(t, int64(3), l.AssetID)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/assets/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/assets/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)

	rec = s.do(t, http.MethodPost, "/api/v1/leaves", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeError(t, rec).Code)

	rec = s.do(t, http.MethodPost, "/api/v1/leaves", `{"employee_id":1,"type":"Annual Leave","start_date":"2024-07-02","end_date":"2024-07-01","reason":"short"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	details := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", details.Code)
	assert.Contains(t, details.Details, "end_date")
	assert.Contains(t, details.Details, "reason")

	// Leave 1 is already approved.
	rec = s.do(t, http.MethodPost, "/api/v1/leaves/1/approve", `{"reviewer_id":5}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decodeError(t, rec).Code)
}

func TestLeaveWorkflowOverHTTP(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/leaves", `{"employee_id":1,"type":"Annual Leave","start_date":"2024-07-01","end_date":"2024-07-03","reason":"Family trip to the coast"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created leave.Leave
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 3, created.Days)
	assert.Equal(t, leave.StatusPending, created.Status)

	rec = s.do(t, http.MethodPost, "/api/v1/leaves/3/reject", `{"reviewer_id":5,"reason":"Team offsite that day"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var rejected leave.Leave
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rejected))
	assert.Equal(t, leave.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Team offsite that day", *rejected.RejectionReason)
}

func TestAssetWorkflowOverHTTP(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/assets/10/assign", `{"employee_id":2,"assigned_date":"2024-06-01","assigned_by":8}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var assignment asset.AssetAssignment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assignment))
	assert.Equal(t, asset.AssignmentActive, assignment.Status)

	rec = s.do(t, http.MethodPost, "/api/v1/assets/10/assign", `{"employee_id":3,"assigned_date":"2024-06-01","assigned_by":8}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/asset-assignments/"+itoa(assignment.ID)+"/return", `{"return_date":"2024-06-05","condition":"Good"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/assets/10/maintenance", `{"maintenance_type":"Preventive","description":"Battery check","scheduled_date":"2024-06-10","priority":"Low"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var log asset.MaintenanceLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &log))

	rec = s.do(t, http.MethodPost, "/api/v1/maintenance-logs/"+itoa(log.ID)+"/cancel", `{"reason":"Vendor rescheduled"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/v1/maintenance-logs/"+itoa(log.ID)+"/start", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/assets/10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail asset.Detail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, asset.StatusAvailable, detail.Asset.Status)
}

func TestTrainingEnrollmentOverHTTP(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/trainings/1/enroll", `{"employee_id":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/trainings/1/enroll", `{"employee_id":5}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/trainings/1/participants/5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardEndpoints(t *testing.T) {
	s := newTestServer(t)

	for _, name := range []string{"kpis", "employees", "leaves", "attendance", "payroll", "recruitment", "performance", "trainings", "benefits", "assets"} {
		rec := s.do(t, http.MethodGet, "/api/v1/dashboard/"+name, "")
		assert.Equal(t, http.StatusOK, rec.Code, name)
		assert.True(t, json.Valid(rec.Body.Bytes()), name)
	}

	rec := s.do(t, http.MethodGet, "/api/v1/employees/3/self-service", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/v1/employees/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportsAreServedFromFiles(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/reports/assets", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var doc report.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, report.ContentTypeXLSX, doc.ContentType)

	rec = s.do(t, http.MethodGet, doc.URL, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(doc.Size), rec.Body.Len())

	rec = s.do(t, http.MethodPost, "/api/v1/payroll/999/payslip", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/files/reports/missing.xlsx", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventStream(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/events?topic=bogus")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events?topic=leave", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return s.hub.SubscriberCount(sse.TopicLeave) == 1 }, 2*time.Second, 10*time.Millisecond)
	s.hub.Publish(sse.Event{Topic: sse.TopicLeave, Event: "leave.approved", Data: map[string]int{"id": 3}})

	reader := bufio.NewReader(resp.Body)
	var lines []string
	for len(lines) < 4 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	assert.Equal(t, "event: connected", lines[0])
	assert.Equal(t, "event: leave.approved", lines[2])
	assert.Equal(t, `data: {"id":3}`, lines[3])
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
