package ports

import (
	"context"
	"time"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

// EntryInput carries the fields for creating or updating a time entry.
// Owner identity comes from the authenticated caller, never the payload.
type EntryInput struct {
	UserID            string
	Username          string
	Position          string
	Date              time.Time
	StartTime         time.Time
	EndTime           time.Time
	OvertimeReason    *string
	ResponsiblePerson string
}

// EntryService implements time-entry CRUD with overlap validation.
type EntryService interface {
	Create(ctx context.Context, input EntryInput) (*domain.TimeEntry, error)
	// Update modifies an existing entry. The caller must own it
	// (domain.ErrForbidden otherwise).
	Update(ctx context.Context, id string, input EntryInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id, userID string) error
	ListMine(ctx context.Context, userID string) ([]*domain.TimeEntry, error)
	ListAll(ctx context.Context) ([]*domain.TimeEntry, error)
	// ListDaily returns the caller's entries for one calendar day.
	ListDaily(ctx context.Context, userID string, date time.Time) ([]*domain.TimeEntry, error)
	// ListWeekly returns the caller's entries for [start, start+7d).
	ListWeekly(ctx context.Context, userID string, start time.Time) ([]*domain.TimeEntry, error)
}
