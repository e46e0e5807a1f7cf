package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

func sampleReport() *domain.UserReport {
	return &domain.UserReport{
		UserID:     "u1",
		Username:   "alice",
		Position:   domain.PositionWorker,
		EmployeeID: "KK-001",
		Stat: domain.ReportStat{
			TotalHours:   33.0,
			TotalDays:    3,
			RegularDays:  2,
			OvertimeDays: 1,
		},
	}
}

func cellValue(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, cell)
	if err != nil {
		t.Fatalf("read cell %s: %v", cell, err)
	}
	return v
}

func TestUserSummaryExcel(t *testing.T) {
	data, err := NewExcelRenderer().UserSummaryExcel(sampleReport(), "January 2024")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if got := cellValue(t, f, "A1"); got != "Employee ID" {
		t.Fatalf("unexpected first header: %q", got)
	}
	if got := cellValue(t, f, "G1"); got != "Overtime Days" {
		t.Fatalf("unexpected last header: %q", got)
	}

	if got := cellValue(t, f, "A2"); got != "KK-001" {
		t.Fatalf("unexpected employee id: %q", got)
	}
	if got := cellValue(t, f, "B2"); got != "alice" {
		t.Fatalf("unexpected username: %q", got)
	}
	if got := cellValue(t, f, "D2"); got != "33.0" {
		t.Fatalf("unexpected total hours: %q", got)
	}
	if got := cellValue(t, f, "E2"); got != "3" {
		t.Fatalf("unexpected total days: %q", got)
	}

	if got := cellValue(t, f, "A4"); got != "Period: January 2024" {
		t.Fatalf("unexpected period label: %q", got)
	}
}

func TestAllUsersSummaryExcel(t *testing.T) {
	second := sampleReport()
	second.UserID = "u2"
	second.Username = "bob"
	second.EmployeeID = "KK-002"
	second.Position = domain.PositionRider

	data, err := NewExcelRenderer().AllUsersSummaryExcel(
		[]*domain.UserReport{sampleReport(), second}, "January 2024")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	// Row order follows the report order.
	if got := cellValue(t, f, "B2"); got != "alice" {
		t.Fatalf("unexpected first row: %q", got)
	}
	if got := cellValue(t, f, "B3"); got != "bob" {
		t.Fatalf("unexpected second row: %q", got)
	}
	if got := cellValue(t, f, "C3"); got != "Rider" {
		t.Fatalf("unexpected position label: %q", got)
	}
}
