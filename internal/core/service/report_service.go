package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/kingkebab/timetrack/internal/core/domain"
	"github.com/kingkebab/timetrack/internal/core/ports"
)

// ReportService aggregates stored entries into monthly reports.
type ReportService struct {
	entries ports.EntryRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewReportService(entries ports.EntryRepository, users ports.UserRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{entries: entries, users: users, logger: logger}
}

func (s *ReportService) UserMonthly(ctx context.Context, userID string, month time.Month, year int) (*domain.UserReport, error) {
	entries, err := s.entries.FindByUserInPeriod(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoEntries
	}

	report := domain.AggregateByUser(entries)[0]
	s.enrich(ctx, report)
	return report, nil
}

func (s *ReportService) AllUsersMonthly(ctx context.Context, month time.Month, year int) ([]*domain.UserReport, error) {
	entries, err := s.entries.FindAllInPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoEntries
	}

	reports := domain.AggregateByUser(entries)
	for _, r := range reports {
		s.enrich(ctx, r)
	}
	return reports, nil
}

// enrich fills identity fields only stored on the user document. Entries
// denormalize username and position; the employee id lives on the account.
func (s *ReportService) enrich(ctx context.Context, report *domain.UserReport) {
	user, err := s.users.FindByID(ctx, report.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", report.UserID).Msg("report user lookup failed")
		return
	}
	report.Username = user.Username
	report.Position = user.Position
	report.EmployeeID = user.EmployeeID
}

// PeriodLabel renders the human-readable period used in report headers and
// filenames, e.g. "January 2024".
func PeriodLabel(month time.Month, year int) string {
	return month.String() + " " + strconv.Itoa(year)
}
