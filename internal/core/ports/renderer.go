package ports

import "github.com/kingkebab/timetrack/internal/core/domain"

// PDFRenderer turns a single user's aggregated report into a PDF document.
// The period label is human readable, e.g. "January 2024".
type PDFRenderer interface {
	// UserDetailPDF renders summary totals and per-entry rows.
	UserDetailPDF(report *domain.UserReport, periodLabel string) ([]byte, error)
}

// ExcelRenderer turns aggregated reports into spreadsheet summaries.
type ExcelRenderer interface {
	// UserSummaryExcel renders a one-row sheet with a single user's totals.
	UserSummaryExcel(report *domain.UserReport, periodLabel string) ([]byte, error)
	// AllUsersSummaryExcel renders one row per user, preserving input order.
	AllUsersSummaryExcel(reports []*domain.UserReport, periodLabel string) ([]byte, error)
}
