package ports

import (
	"context"
	"time"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

// ReportService builds per-user and all-user monthly reports.
type ReportService interface {
	// UserMonthly aggregates one user's entries for a calendar month.
	// Returns domain.ErrNoEntries when the period is empty.
	UserMonthly(ctx context.Context, userID string, month time.Month, year int) (*domain.UserReport, error)
	// AllUsersMonthly aggregates every user's entries for a calendar month,
	// grouped by owner in order of first appearance.
	AllUsersMonthly(ctx context.Context, month time.Month, year int) ([]*domain.UserReport, error)
}
