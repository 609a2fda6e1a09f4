package fixture

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedFixturesDecode(t *testing.T) {
	ctx := context.Background()
	src := NewEmbedded()

	employees, err := src.ListEmployees(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, employees)

	assets, err := src.ListAssets(ctx)
	require.NoError(t, err)
	var spare *asset.Asset
	for i := range assets {
		if assets[i].ID == 10 {
			spare = &assets[i]
		}
		assert.Equal(t, assets[i].Status == asset.StatusAssigned, assets[i].AssignedTo != nil, assets[i].AssetCode)
		assert.LessOrEqual(t, assets[i].CurrentValue, assets[i].PurchasePrice, assets[i].AssetCode)
	}
	require.NotNil(t, spare)
	assert.Equal(t, asset.StatusAvailable, spare.Status)

	_, err = src.ListAssetAssignments(ctx)
	require.NoError(t, err)
	_, err = src.ListMaintenanceLogs(ctx)
	require.NoError(t, err)
	_, err = src.ListTimeLogs(ctx)
	require.NoError(t, err)
	_, err = src.ListCandidates(ctx)
	require.NoError(t, err)
	_, err = src.ListPerformance(ctx)
	require.NoError(t, err)
}

func TestPayrollFixturesHoldInvariants(t *testing.T) {
	slips, err := NewEmbedded().ListPayrolls(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, slips)

	raw, err := read[json.RawMessage](context.Background(), NewEmbedded(), FilePayroll)
	require.NoError(t, err)
	assert.Len(t, slips, len(raw), "no embedded slip may be skipped")
	for _, p := range slips {
		assert.NoError(t, p.Validate(), "payroll %d", p.ID)
	}
}

func TestBenefitFixturesHoldInvariants(t *testing.T) {
	all, err := NewEmbedded().ListBenefits(context.Background())
	require.NoError(t, err)
	for _, b := range all {
		assert.NoError(t, b.Validate(), "benefits %d", b.ID)
	}
}

func TestTrainingFixturesRespectCapacity(t *testing.T) {
	trainings, err := NewEmbedded().ListTrainings(context.Background())
	require.NoError(t, err)
	for _, tr := range trainings {
		assert.LessOrEqual(t, tr.Seated(), tr.MaxParticipants, tr.Title)
	}
}

func TestLeaveFixturesAuditFields(t *testing.T) {
	leaves, err := NewEmbedded().ListLeaves(context.Background())
	require.NoError(t, err)
	for _, l := range leaves {
		if l.Status == leave.StatusPending {
			assert.Nil(t, l.ApprovedBy, "leave %d", l.ID)
			assert.Nil(t, l.ApprovedDate, "leave %d", l.ID)
		} else {
			assert.NotNil(t, l.ApprovedBy, "leave %d", l.ID)
			assert.NotNil(t, l.ApprovedDate, "leave %d", l.ID)
		}
		assert.Equal(t, l.Status == leave.StatusRejected, l.RejectionReason != nil, "leave %d", l.ID)
	}
}

func TestDirOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileEmployees), []byte(`[{"id":42,"name":"Only One","status":"Active","hire_date":"2024-01-01"}]`), 0o644))

	src, err := New(dir)
	require.NoError(t, err)

	employees, err := src.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, int64(42), employees[0].ID)

	_, err = src.ListAssets(context.Background())
	assert.Error(t, err)

	_, err = New(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestListPayrolls_SkipsInconsistentSlips(t *testing.T) {
	dir := t.TempDir()
	slips := `[
		{"id": 1, "employee_id": 1, "emp_code": "EMP001", "month": "2024-01",
		 "monthly_salary": 5000, "overtime_hours": 0, "overtime_rate": 0, "overtime_pay": 0,
		 "allowances": {"transport": 100, "meal": 0, "mobile": 0}, "total_allowances": 100,
		 "gross_pay": 5100,
		 "deductions": {"tax": 500, "social_security": 0, "health_insurance": 0, "provident_fund": 0},
		 "total_deductions": 500, "net_pay": 4600},
		{"id": 2, "employee_id": 2, "emp_code": "EMP002", "month": "2024-01",
		 "monthly_salary": 5000, "overtime_hours": 0, "overtime_rate": 0, "overtime_pay": 0,
		 "allowances": {"transport": 0, "meal": 0, "mobile": 0}, "total_allowances": 0,
		 "gross_pay": 5000,
		 "deductions": {"tax": 500, "social_security": 0, "health_insurance": 0, "provident_fund": 0},
		 "total_deductions": 500, "net_pay": 4700}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FilePayroll), []byte(slips), 0o644))

	src, err := NewDir(dir)
	require.NoError(t, err)

	got, err := src.ListPayrolls(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
