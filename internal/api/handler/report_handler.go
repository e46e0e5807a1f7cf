package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kingkebab/timetrack/internal/api/metrics"
	"github.com/kingkebab/timetrack/internal/core/domain"
	"github.com/kingkebab/timetrack/internal/core/ports"
	"github.com/kingkebab/timetrack/internal/core/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves downloadable monthly reports.
type ReportHandler struct {
	reports ports.ReportService
	pdf     ports.PDFRenderer
	excel   ports.ExcelRenderer
}

func NewReportHandler(reports ports.ReportService, pdf ports.PDFRenderer, excel ports.ExcelRenderer) *ReportHandler {
	return &ReportHandler{reports: reports, pdf: pdf, excel: excel}
}

// MyPDF downloads the authenticated user's monthly detail report.
//
// @Summary      Download own monthly PDF report
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        month  path  int  true  "Month (1-12)"
// @Param        year   path  int  true  "Year"
// @Success      200  {file}    file
// @Failure      404  {object}  errorResponse
// @Router       /api/time/my-pdf/{month}/{year} [get]
func (h *ReportHandler) MyPDF(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return h.userPDF(c, user.ID, user.Username)
}

// WorkerPDF downloads any user's monthly detail report. Admin only.
//
// @Summary      Download a worker's monthly PDF report
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        userId  path  string  true  "User id"
// @Param        month   path  int     true  "Month (1-12)"
// @Param        year    path  int     true  "Year"
// @Success      200  {file}    file
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/time/worker-pdf/{userId}/{month}/{year} [get]
func (h *ReportHandler) WorkerPDF(c echo.Context) error {
	return h.userPDF(c, c.Param("userId"), "time-report")
}

func (h *ReportHandler) userPDF(c echo.Context, userID, filePrefix string) error {
	month, year, err := parsePeriod(c)
	if err != nil {
		return err
	}

	report, err := h.reports.UserMonthly(c.Request().Context(), userID, month, year)
	if err != nil {
		return err
	}

	label := service.PeriodLabel(month, year)
	data, err := h.pdf.UserDetailPDF(report, label)
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("pdf", "user").Inc()

	setAttachment(c, fmt.Sprintf("%s-%s.pdf", filePrefix, fileLabel(label)))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// WorkerExcel downloads a single user's monthly summary sheet. Admin only.
//
// @Summary      Download a worker's monthly Excel summary
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        userId  path  string  true  "User id"
// @Param        month   path  int     true  "Month (1-12)"
// @Param        year    path  int     true  "Year"
// @Success      200  {file}    file
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/time/worker-excel/{userId}/{month}/{year} [get]
func (h *ReportHandler) WorkerExcel(c echo.Context) error {
	month, year, err := parsePeriod(c)
	if err != nil {
		return err
	}

	report, err := h.reports.UserMonthly(c.Request().Context(), c.Param("userId"), month, year)
	if err != nil {
		return err
	}

	label := service.PeriodLabel(month, year)
	data, err := h.excel.UserSummaryExcel(report, label)
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("xlsx", "user").Inc()

	setAttachment(c, fmt.Sprintf("time-report-%s.xlsx", fileLabel(label)))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

// AllWorkersExcel downloads the per-user summary for every user. Admin only.
//
// @Summary      Download the all-workers monthly Excel summary
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        month  path  int  true  "Month (1-12)"
// @Param        year   path  int  true  "Year"
// @Success      200  {file}    file
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/time/all-workers-excel/{month}/{year} [get]
func (h *ReportHandler) AllWorkersExcel(c echo.Context) error {
	month, year, err := parsePeriod(c)
	if err != nil {
		return err
	}

	reports, err := h.reports.AllUsersMonthly(c.Request().Context(), month, year)
	if err != nil {
		return err
	}

	label := service.PeriodLabel(month, year)
	data, err := h.excel.AllUsersSummaryExcel(reports, label)
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("xlsx", "all").Inc()

	setAttachment(c, fmt.Sprintf("all-workers-report-%s.xlsx", fileLabel(label)))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

func parsePeriod(c echo.Context) (time.Month, int, error) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, domain.ErrInvalidFormat
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		return 0, 0, domain.ErrInvalidFormat
	}
	return time.Month(month), year, nil
}

func setAttachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
}

// fileLabel turns "January 2024" into "January-2024" for filenames.
func fileLabel(periodLabel string) string {
	return strings.ReplaceAll(periodLabel, " ", "-")
}
