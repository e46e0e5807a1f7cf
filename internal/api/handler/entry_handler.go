package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kingkebab/timetrack/internal/api/metrics"
	"github.com/kingkebab/timetrack/internal/core/domain"
	"github.com/kingkebab/timetrack/internal/core/ports"
)

// EntryHandler handles time-entry CRUD requests.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Create adds a time entry for the authenticated user.
//
// @Summary      Create a time entry
// @Tags         time
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entryRequest  true  "Entry details"
// @Success      201   {object}  entryResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/time [post]
func (h *EntryHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	input, err := h.bindEntryInput(c, user)
	if err != nil {
		countRejection(err)
		return err
	}

	created, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		countRejection(err)
		return err
	}

	metrics.EntriesCreatedTotal.
		WithLabelValues(created.Position, strconv.FormatBool(created.IsOvertime())).
		Inc()

	return c.JSON(http.StatusCreated, toEntryResponse(created))
}

// Update modifies an entry owned by the authenticated user.
//
// @Summary      Update a time entry
// @Tags         time
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Entry id"
// @Param        body  body      entryRequest  true  "Entry details"
// @Success      200   {object}  entryResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/time/{id} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	input, err := h.bindEntryInput(c, user)
	if err != nil {
		countRejection(err)
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		countRejection(err)
		return err
	}

	return c.JSON(http.StatusOK, toEntryResponse(updated))
}

// Delete removes an entry owned by the authenticated user.
//
// @Summary      Delete a time entry
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Entry id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /api/time/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "time entry deleted"})
}

// ListMine returns the authenticated user's entries, newest first.
//
// @Summary      List own time entries
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entryResponse
// @Router       /api/time/my-entries [get]
func (h *EntryHandler) ListMine(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListMine(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEntryResponses(entries))
}

// ListAll returns every user's entries. Admin only.
//
// @Summary      List all time entries
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entryResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/time/all [get]
func (h *EntryHandler) ListAll(c echo.Context) error {
	entries, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEntryResponses(entries))
}

// ListDaily returns the authenticated user's entries for one day.
//
// @Summary      List own entries for a day
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Param        date  path  string  true  "Day (YYYY-MM-DD)"
// @Success      200  {array}  entryResponse
// @Router       /api/time/daily/{date} [get]
func (h *EntryHandler) ListDaily(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	date, err := parseDate(c.Param("date"))
	if err != nil {
		return err
	}

	entries, err := h.service.ListDaily(c.Request().Context(), user.ID, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEntryResponses(entries))
}

// ListWeekly returns the authenticated user's entries for seven days from
// the given start.
//
// @Summary      List own entries for a week
// @Tags         time
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  path  string  true  "Week start (YYYY-MM-DD)"
// @Success      200  {array}  entryResponse
// @Router       /api/time/weekly/{startDate} [get]
func (h *EntryHandler) ListWeekly(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	start, err := parseDate(c.Param("startDate"))
	if err != nil {
		return err
	}

	entries, err := h.service.ListWeekly(c.Request().Context(), user.ID, start)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEntryResponses(entries))
}

// bindEntryInput binds and parses the entry payload. Required-field errors
// come first, then parse errors, matching the validation order entries are
// rejected in.
func (h *EntryHandler) bindEntryInput(c echo.Context, user *domain.User) (ports.EntryInput, error) {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return ports.EntryInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return ports.EntryInput{}, domain.ErrIncompleteInput
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return ports.EntryInput{}, err
	}
	start, err := parseInstant(req.StartTime)
	if err != nil {
		return ports.EntryInput{}, err
	}
	end, err := parseInstant(req.EndTime)
	if err != nil {
		return ports.EntryInput{}, err
	}

	return ports.EntryInput{
		UserID:            user.ID,
		Username:          user.Username,
		Position:          user.Position,
		Date:              date,
		StartTime:         start,
		EndTime:           end,
		OvertimeReason:    req.OvertimeReason,
		ResponsiblePerson: req.ResponsiblePerson,
	}, nil
}

// parseInstant accepts an RFC 3339 timestamp.
func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidFormat
	}
	return t.UTC(), nil
}

// parseDate accepts a calendar date, with or without a time component.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return parseInstant(s)
}

func countRejection(err error) {
	switch {
	case errors.Is(err, domain.ErrIncompleteInput):
		metrics.EntryRejectionsTotal.WithLabelValues("incomplete_input").Inc()
	case errors.Is(err, domain.ErrInvalidFormat):
		metrics.EntryRejectionsTotal.WithLabelValues("invalid_format").Inc()
	case errors.Is(err, domain.ErrOverlap):
		metrics.EntryRejectionsTotal.WithLabelValues("overlap").Inc()
	case errors.Is(err, domain.ErrForbidden):
		metrics.EntryRejectionsTotal.WithLabelValues("forbidden").Inc()
	}
}
