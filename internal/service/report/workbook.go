package report

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/service/dashboard"
	"github.com/xuri/excelize/v2"
)

const (
	sheetAssets  = "Assets"
	sheetSummary = "Summary"
)

var assetColumns = []interface{}{
	"Asset Code", "Name", "Category", "Brand", "Model", "Serial Number", "Status", "Condition",
	"Purchase Date", "Purchase Price", "Current Value", "Depreciation", "Location", "Assigned To",
	"Last Maintenance", "Next Maintenance",
}

func buildAssetWorkbook(assets []asset.Asset, logs []asset.MaintenanceLog, today date.Date, upcomingDays int) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetAssets); err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetAssets, "A1", &assetColumns); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheetAssets, 1, 1, header); err != nil {
		return nil, err
	}
	for i, a := range assets {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			a.AssetCode, a.Name, a.Category, a.Brand, a.Model, a.SerialNumber, string(a.Status), string(a.Condition),
			a.PurchaseDate.String(), a.PurchasePrice, a.CurrentValue, a.Depreciation(), a.Location, holderName(a),
			dateCell(a.LastMaintenance), dateCell(a.NextMaintenance),
		}
		if err := f.SetSheetRow(sheetAssets, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheetAssets, "A", "P", 16); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, err
	}
	r := dashboard.AssetReport(assets, logs, today, upcomingDays)
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total assets", r.Total},
		{"Assigned", r.Assigned},
		{"Available", r.Available},
		{"Under maintenance", r.UnderMaintenance},
		{"Disposed", r.Disposed},
		{"Original value", r.OriginalValue},
		{"Current value", r.TotalValue},
		{"Total depreciation", r.TotalDepreciation},
		{"Depreciation rate (%)", r.DepreciationRate},
		{"Maintenance cost", r.MaintenanceCost},
		{"Average maintenance cost", r.AvgMaintenanceCost},
		{fmt.Sprintf("Maintenance due in %d days", upcomingDays), r.UpcomingMaintenance},
		{"Overdue maintenance", r.OverdueMaintenance},
		{},
		{"Category", "Assets", "Current value", "Share (%)"},
	}
	for _, g := range r.ByCategory {
		rows = append(rows, []interface{}{g.Key, g.Count, g.Sum, g.Percentage})
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetSummary, cell, &rows[i]); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheetSummary, "A", "A", 28); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func holderName(a asset.Asset) string {
	switch {
	case a.AssignedTo == nil:
		return ""
	case a.AssignedTo.EmployeeName != nil:
		return *a.AssignedTo.EmployeeName
	default:
		return a.AssignedTo.Department
	}
}

func dateCell(d *date.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
