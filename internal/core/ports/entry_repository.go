package ports

import (
	"context"
	"time"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

// EntryRepository defines persistence for time entries.
type EntryRepository interface {
	Insert(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	Update(ctx context.Context, entry *domain.TimeEntry) error
	// Delete removes the entry only when it belongs to userID; returns
	// domain.ErrEntryNotFound otherwise.
	Delete(ctx context.Context, id, userID string) error
	FindByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	// FindByUser returns all entries for a user, newest date first.
	FindByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error)
	// FindByUserAndDate returns a user's entries whose date falls on the
	// given calendar day, used for overlap validation.
	FindByUserAndDate(ctx context.Context, userID string, date time.Time) ([]*domain.TimeEntry, error)
	// FindByUserInRange returns a user's entries with date in [from, to).
	FindByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.TimeEntry, error)
	// FindByUserInPeriod returns a user's entries for a calendar month,
	// oldest date first.
	FindByUserInPeriod(ctx context.Context, userID string, month time.Month, year int) ([]*domain.TimeEntry, error)
	// FindAllInPeriod returns every user's entries for a calendar month,
	// oldest date first.
	FindAllInPeriod(ctx context.Context, month time.Month, year int) ([]*domain.TimeEntry, error)
	// FindAll returns all entries, newest date first.
	FindAll(ctx context.Context) ([]*domain.TimeEntry, error)
}
