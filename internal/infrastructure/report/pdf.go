// Package report renders aggregated time reports into downloadable
// documents. Layout mirrors the reports the company already distributes:
// a summary block followed by one row per recorded day.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

const companyName = "King Kebab"

// PDFRenderer renders single-user monthly detail reports.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// UserDetailPDF renders the report header, a summary box, and a daily table
// with an annotation line under overtime rows.
func (r *PDFRenderer) UserDetailPDF(report *domain.UserReport, periodLabel string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Time Report - %s", periodLabel), false)
	pdf.SetAuthor(companyName, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 9, fmt.Sprintf("Time Report - %s", periodLabel), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s - %s", report.Username, domain.PositionLabel(report.Position)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.summaryBox(pdf, report)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 8, "Daily Report:", "", 1, "L", false, 0, "")
	pdf.Ln(1)
	r.entriesTable(pdf, report.Entries)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) summaryBox(pdf *fpdf.Fpdf, report *domain.UserReport) {
	top := pdf.GetY()
	pdf.SetFillColor(246, 246, 246)
	pdf.SetDrawColor(224, 224, 224)
	pdf.Rect(10, top, 190, 34, "FD")

	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Helvetica", "", 11)

	average := "-"
	if avg, ok := report.Stat.AverageHours(); ok {
		average = fmt.Sprintf("%.1f hours", avg)
	}

	cells := [][2]string{
		{"Position:", domain.PositionLabel(report.Position)},
		{"Total Days:", fmt.Sprintf("%d days", report.Stat.TotalDays)},
		{"Regular Days:", fmt.Sprintf("%d days", report.Stat.RegularDays)},
		{"Overtime Days:", fmt.Sprintf("%d days", report.Stat.OvertimeDays)},
		{"Total Hours:", fmt.Sprintf("%.1f hours", report.Stat.TotalHours)},
		{"Average Hours:", average},
	}

	for i, cell := range cells {
		x := 16.0
		if i%2 == 1 {
			x = 110.0
		}
		y := top + 6 + float64(i/2)*9
		pdf.SetXY(x, y)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(35, 6, cell[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(50, 6, cell[1], "", 0, "L", false, 0, "")
	}

	pdf.SetY(top + 34)
}

func (r *PDFRenderer) entriesTable(pdf *fpdf.Fpdf, entries []*domain.TimeEntry) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(74, 144, 226)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(50, 9, "Date", "", 0, "L", true, 0, "")
	pdf.CellFormat(60, 9, "Time", "", 0, "L", true, 0, "")
	pdf.CellFormat(40, 9, "Hours", "", 0, "L", true, 0, "")
	pdf.CellFormat(40, 9, "Status", "", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, e := range entries {
		if pdf.GetY() > 265 {
			pdf.AddPage()
		}

		if i%2 == 0 {
			pdf.SetFillColor(248, 249, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetTextColor(51, 51, 51)

		status := "Regular"
		if e.IsOvertime() {
			status = "Overtime"
		}

		pdf.CellFormat(50, 8, e.Date.Format("Jan 2, 2006"), "", 0, "L", true, 0, "")
		pdf.CellFormat(60, 8, fmt.Sprintf("%s - %s", e.StartTime.Format("03:04 PM"), e.EndTime.Format("03:04 PM")), "", 0, "L", true, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.1f hours", e.Hours), "", 0, "L", true, 0, "")
		pdf.CellFormat(40, 8, status, "", 1, "L", true, 0, "")

		if e.IsOvertime() && e.OvertimeReason != nil && *e.OvertimeReason != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(240, 173, 78)
			annotation := "Reason: " + *e.OvertimeReason
			if *e.OvertimeReason == domain.OvertimeReasonCompanyRequest && e.ResponsiblePerson != "" {
				annotation += "  |  Responsible: " + e.ResponsiblePerson
			}
			pdf.CellFormat(0, 6, annotation, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
		}
	}
}
