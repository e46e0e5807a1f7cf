package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kingkebab/timetrack/internal/core/domain"
	"github.com/kingkebab/timetrack/internal/core/ports"
)

// EntryService implements time-entry CRUD with overlap validation.
type EntryService struct {
	entries  ports.EntryRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewEntryService(entries ports.EntryRepository, notifier ports.Notifier, logger zerolog.Logger) *EntryService {
	return &EntryService{entries: entries, notifier: notifier, logger: logger}
}

// Create validates and persists a new entry, then notifies about it.
// The overlap check reads existing entries for the owner's day before the
// insert; two racing requests can both pass the check. The unique index on
// (user_id, date, start_time) narrows the window but identical-interval
// creation remains a documented limitation.
func (s *EntryService) Create(ctx context.Context, input ports.EntryInput) (*domain.TimeEntry, error) {
	candidate := entryFromInput(input)

	existing, err := s.entries.FindByUserAndDate(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateEntry(candidate, existing); err != nil {
		return nil, err
	}

	candidate.ComputeHours()
	now := time.Now().UTC()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	created, err := s.entries.Insert(ctx, candidate)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to insert time entry")
		return nil, err
	}

	s.logger.Info().
		Str("entry_id", created.ID).
		Str("username", created.Username).
		Float64("hours", created.Hours).
		Bool("overtime", created.IsOvertime()).
		Msg("time entry created")

	if err := s.notifier.Notify(ctx, entryCreatedMessage(created)); err != nil {
		// Best effort only; delivery failures never reach the caller.
		s.logger.Warn().Err(err).Str("entry_id", created.ID).Msg("entry notification failed")
	}

	return created, nil
}

// Update re-validates and persists changes to an entry owned by the caller.
func (s *EntryService) Update(ctx context.Context, id string, input ports.EntryInput) (*domain.TimeEntry, error) {
	stored, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored.UserID != input.UserID {
		return nil, domain.ErrForbidden
	}

	candidate := entryFromInput(input)
	candidate.ID = stored.ID
	candidate.CreatedAt = stored.CreatedAt

	existing, err := s.entries.FindByUserAndDate(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateEntry(candidate, existing); err != nil {
		return nil, err
	}

	candidate.ComputeHours()
	candidate.UpdatedAt = time.Now().UTC()

	if err := s.entries.Update(ctx, candidate); err != nil {
		s.logger.Error().Err(err).Str("entry_id", id).Msg("failed to update time entry")
		return nil, err
	}
	return candidate, nil
}

func (s *EntryService) Delete(ctx context.Context, id, userID string) error {
	return s.entries.Delete(ctx, id, userID)
}

func (s *EntryService) ListMine(ctx context.Context, userID string) ([]*domain.TimeEntry, error) {
	return s.entries.FindByUser(ctx, userID)
}

func (s *EntryService) ListAll(ctx context.Context) ([]*domain.TimeEntry, error) {
	return s.entries.FindAll(ctx)
}

func (s *EntryService) ListDaily(ctx context.Context, userID string, date time.Time) ([]*domain.TimeEntry, error) {
	return s.entries.FindByUserAndDate(ctx, userID, date)
}

func (s *EntryService) ListWeekly(ctx context.Context, userID string, start time.Time) ([]*domain.TimeEntry, error) {
	return s.entries.FindByUserInRange(ctx, userID, start, start.AddDate(0, 0, 7))
}

func entryFromInput(input ports.EntryInput) *domain.TimeEntry {
	return &domain.TimeEntry{
		UserID:            input.UserID,
		Username:          input.Username,
		Position:          input.Position,
		Date:              input.Date,
		StartTime:         input.StartTime,
		EndTime:           input.EndTime,
		OvertimeReason:    input.OvertimeReason,
		ResponsiblePerson: input.ResponsiblePerson,
	}
}

// entryCreatedMessage builds the HTML notification text for a new entry.
func entryCreatedMessage(e *domain.TimeEntry) string {
	msg := fmt.Sprintf(
		"🆕 <b>New time entry</b>\n\n👤 User: %s\n📅 Date: %s\n⏰ Time: %s - %s\n⏱ Hours: %.1f",
		e.Username,
		e.Date.Format("2006-01-02"),
		e.StartTime.Format("15:04"),
		e.EndTime.Format("15:04"),
		e.Hours,
	)
	if e.OvertimeReason != nil && *e.OvertimeReason != "" {
		msg += "\n⚠️ Overtime reason: " + *e.OvertimeReason
	}
	if e.ResponsiblePerson != "" {
		msg += "\n👥 Responsible: " + e.ResponsiblePerson
	}
	return msg
}
