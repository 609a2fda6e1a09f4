package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/service/catalog"
	"github.com/google/uuid"
)

var _ report.ReportService = (*ReportServiceImpl)(nil)

type ReportServiceImpl struct {
	catalog      *catalog.Catalog
	payrolls     payroll.PayrollRepository
	storage      storage.FileStorage
	upcomingDays int
	now          func() time.Time
}

func NewReportService(c *catalog.Catalog, payrollRepository payroll.PayrollRepository, fileStorage storage.FileStorage, upcomingDays int) *ReportServiceImpl {
	return &ReportServiceImpl{
		catalog:      c,
		payrolls:     payrollRepository,
		storage:      fileStorage,
		upcomingDays: upcomingDays,
		now:          time.Now,
	}
}

// WithClock replaces the time source.
func (s *ReportServiceImpl) WithClock(now func() time.Time) *ReportServiceImpl {
	s.now = now
	return s
}

func (s *ReportServiceImpl) ExportAssetRegister(ctx context.Context) (report.Document, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return report.Document{}, fmt.Errorf("failed to load assets: %w", err)
	}

	buf, err := buildAssetWorkbook(snapshot.Assets, snapshot.MaintenanceLogs, date.Of(s.now()), s.upcomingDays)
	if err != nil {
		return report.Document{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	key := fmt.Sprintf("reports/assets-%s.xlsx", uuid.NewString())
	doc, err := s.store(ctx, buf, key, report.ContentTypeXLSX)
	if err != nil {
		return report.Document{}, err
	}

	slog.Info("Asset register exported", "path", doc.Path, "assets", len(snapshot.Assets), "size", doc.Size)
	return doc, nil
}

func (s *ReportServiceImpl) GeneratePayslip(ctx context.Context, payrollID int64) (report.Document, error) {
	slip, err := s.payrolls.GetByID(ctx, payrollID)
	if err != nil {
		return report.Document{}, fmt.Errorf("failed to get payroll by ID: %w", err)
	}
	if err := slip.Validate(); err != nil {
		return report.Document{}, fmt.Errorf("%w: payroll %d: %w", payroll.ErrInconsistentSlip, slip.ID, err)
	}

	buf, err := buildPayslip(slip)
	if err != nil {
		return report.Document{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	key := fmt.Sprintf("payslips/%s-%s-%s.pdf", slugify(slip.EmpCode, "employee"), slugify(slip.Month, "period"), uuid.NewString())
	doc, err := s.store(ctx, buf, key, report.ContentTypePDF)
	if err != nil {
		return report.Document{}, err
	}

	slog.Info("Payslip generated", "payroll_id", slip.ID, "employee_id", slip.EmployeeID, "path", doc.Path)
	return doc, nil
}

func (s *ReportServiceImpl) store(ctx context.Context, buf *bytes.Buffer, key, contentType string) (report.Document, error) {
	size := int64(buf.Len())
	path, err := s.storage.Upload(ctx, buf, key, contentType)
	if err != nil {
		return report.Document{}, fmt.Errorf("%w: upload: %w", report.ErrReportStoreFailed, err)
	}
	url, err := s.storage.GetURL(ctx, path, 0)
	if err != nil {
		return report.Document{}, fmt.Errorf("%w: url: %w", report.ErrReportStoreFailed, err)
	}
	return report.Document{Path: path, URL: url, ContentType: contentType, Size: size}, nil
}

// slugify lowercases s and keeps only ASCII letters and digits, collapsing
// every other run into a single dash. An empty result becomes fallback.
func slugify(s, fallback string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	if out := strings.TrimSuffix(b.String(), "-"); out != "" {
		return out
	}
	return fallback
}
