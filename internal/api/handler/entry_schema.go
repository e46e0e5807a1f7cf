package handler

import (
	"time"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

// entryRequest is the create/update payload. Times arrive as strings so the
// required-field check can run before any parsing: completeness errors take
// precedence over format errors.
type entryRequest struct {
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	OvertimeReason    *string `json:"overtime_reason,omitempty"`
	ResponsiblePerson string  `json:"responsible_person,omitempty"`
}

type entryResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	Username          string  `json:"username"`
	Position          string  `json:"position"`
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	Hours             float64 `json:"hours"`
	Overtime          bool    `json:"overtime"`
	OvertimeReason    *string `json:"overtime_reason,omitempty"`
	ResponsiblePerson string  `json:"responsible_person,omitempty"`
}

func toEntryResponse(e *domain.TimeEntry) entryResponse {
	return entryResponse{
		ID:                e.ID,
		UserID:            e.UserID,
		Username:          e.Username,
		Position:          e.Position,
		Date:              e.Date.UTC().Format(time.RFC3339),
		StartTime:         e.StartTime.UTC().Format(time.RFC3339),
		EndTime:           e.EndTime.UTC().Format(time.RFC3339),
		Hours:             e.Hours,
		Overtime:          e.IsOvertime(),
		OvertimeReason:    e.OvertimeReason,
		ResponsiblePerson: e.ResponsiblePerson,
	}
}

func toEntryResponses(entries []*domain.TimeEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}
