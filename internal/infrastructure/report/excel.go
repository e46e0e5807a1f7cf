package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

const sheetName = "Time Report"

// ExcelRenderer renders per-user and all-user spreadsheet summaries.
type ExcelRenderer struct{}

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

// UserSummaryExcel writes a single summary row for one user's period.
func (r *ExcelRenderer) UserSummaryExcel(report *domain.UserReport, periodLabel string) ([]byte, error) {
	return renderSummary([]*domain.UserReport{report}, periodLabel)
}

// AllUsersSummaryExcel writes one summary row per user, in the given order.
func (r *ExcelRenderer) AllUsersSummaryExcel(reports []*domain.UserReport, periodLabel string) ([]byte, error) {
	return renderSummary(reports, periodLabel)
}

func renderSummary(reports []*domain.UserReport, periodLabel string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Employee ID", "Username", "Position", "Total Hours", "Total Days", "Regular Days", "Overtime Days"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4E7BEE"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return nil, fmt.Errorf("apply style: %w", err)
	}
	if err := f.SetColWidth(sheetName, "A", "G", 16); err != nil {
		return nil, fmt.Errorf("set widths: %w", err)
	}

	for i, report := range reports {
		row := i + 2
		values := []any{
			report.EmployeeID,
			report.Username,
			domain.PositionLabel(report.Position),
			fmt.Sprintf("%.1f", report.Stat.TotalHours),
			report.Stat.TotalDays,
			report.Stat.RegularDays,
			report.Stat.OvertimeDays,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
	}

	// Period label sits below the table so the filename is not the only
	// place the period appears.
	labelCell, err := excelize.CoordinatesToCellName(1, len(reports)+3)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, labelCell, "Period: "+periodLabel); err != nil {
		return nil, fmt.Errorf("write period: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
