package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kingkebab/timetrack/internal/core/domain"
	"github.com/kingkebab/timetrack/internal/core/ports"
)

func entryInput(userID, username, start, end string) ports.EntryInput {
	s, _ := time.Parse(time.RFC3339, start)
	e, _ := time.Parse(time.RFC3339, end)
	return ports.EntryInput{
		UserID:    userID,
		Username:  username,
		Position:  domain.PositionWorker,
		Date:      time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC),
		StartTime: s,
		EndTime:   e,
	}
}

func TestEntryCreate(t *testing.T) {
	repo := newStubEntryRepo()
	notifier := &stubNotifier{}
	svc := NewEntryService(repo, notifier, zerolog.Nop())

	created, err := svc.Create(context.Background(),
		entryInput("u1", "alice", "2024-01-10T09:00:00Z", "2024-01-10T22:00:00Z"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned entry id")
	}
	if created.Hours != 13.0 {
		t.Fatalf("expected 13.0 hours, got %v", created.Hours)
	}
	if !created.IsOvertime() {
		t.Fatalf("13-hour entry must be flagged overtime")
	}

	if len(notifier.messages) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.messages))
	}
	if !strings.Contains(notifier.messages[0], "alice") {
		t.Fatalf("notification missing username: %q", notifier.messages[0])
	}
}

func TestEntryCreate_OverlapRejected(t *testing.T) {
	repo := newStubEntryRepo()
	svc := NewEntryService(repo, &stubNotifier{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(),
		entryInput("u1", "alice", "2024-01-10T09:00:00Z", "2024-01-10T22:00:00Z")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(),
		entryInput("u1", "alice", "2024-01-10T20:00:00Z", "2024-01-10T23:00:00Z"))
	if !errors.Is(err, domain.ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}

	// Another user on the same day is unaffected.
	if _, err := svc.Create(context.Background(),
		entryInput("u2", "bob", "2024-01-10T20:00:00Z", "2024-01-10T23:00:00Z")); err != nil {
		t.Fatalf("other user's entry must be accepted, got %v", err)
	}
}

func TestEntryCreate_NotificationFailureSwallowed(t *testing.T) {
	repo := newStubEntryRepo()
	notifier := &stubNotifier{err: errors.New("telegram down")}
	svc := NewEntryService(repo, notifier, zerolog.Nop())

	created, err := svc.Create(context.Background(),
		entryInput("u1", "alice", "2024-01-10T09:00:00Z", "2024-01-10T17:00:00Z"))
	if err != nil {
		t.Fatalf("create must succeed despite notifier failure, got %v", err)
	}
	if created == nil || created.ID == "" {
		t.Fatalf("expected persisted entry")
	}
}

func TestEntryUpdate(t *testing.T) {
	repo := newStubEntryRepo()
	svc := NewEntryService(repo, &stubNotifier{}, zerolog.Nop())

	created, err := svc.Create(context.Background(),
		entryInput("u1", "alice", "2024-01-10T09:00:00Z", "2024-01-10T17:00:00Z"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Shifting within the entry's own old window is fine.
	updated, err := svc.Update(context.Background(), created.ID,
		entryInput("u1", "alice", "2024-01-10T10:00:00Z", "2024-01-10T16:30:00Z"))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Hours != 6.5 {
		t.Fatalf("expected recomputed 6.5 hours, got %v", updated.Hours)
	}

	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find updated entry: %v", err)
	}
	if !stored.StartTime.Equal(updated.StartTime) {
		t.Fatalf("update not persisted")
	}
}

func TestEntryUpdate_ForbiddenForNonOwner(t *testing.T) {
	repo := newStubEntryRepo()
	svc := NewEntryService(repo, &stubNotifier{}, zerolog.Nop())

	created, err := svc.Create(context.Background(),
		entryInput("u1", "alice", "2024-01-10T09:00:00Z", "2024-01-10T17:00:00Z"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(context.Background(), created.ID,
		entryInput("u2", "bob", "2024-01-10T09:00:00Z", "2024-01-10T17:00:00Z"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEntryUpdate_OverlapWithOtherEntry(t *testing.T) {
	repo := newStubEntryRepo()
	svc := NewEntryService(repo, &stubNotifier{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(),
		entryInput("u1", "alice", "2024-01-10T09:00:00Z", "2024-01-10T13:00:00Z")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.Create(context.Background(),
		entryInput("u1", "alice", "2024-01-10T14:00:00Z", "2024-01-10T18:00:00Z"))
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	_, err = svc.Update(context.Background(), second.ID,
		entryInput("u1", "alice", "2024-01-10T12:00:00Z", "2024-01-10T18:00:00Z"))
	if !errors.Is(err, domain.ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
}

func TestEntryDelete(t *testing.T) {
	repo := newStubEntryRepo()
	svc := NewEntryService(repo, &stubNotifier{}, zerolog.Nop())

	created, err := svc.Create(context.Background(),
		entryInput("u1", "alice", "2024-01-10T09:00:00Z", "2024-01-10T17:00:00Z"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Someone else's delete must not touch the entry.
	if err := svc.Delete(context.Background(), created.ID, "u2"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for foreign delete, got %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, "u1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("entry still present after delete")
	}
}

func TestListWeekly(t *testing.T) {
	repo := newStubEntryRepo()
	svc := NewEntryService(repo, &stubNotifier{}, zerolog.Nop())

	days := []string{"2024-01-08", "2024-01-10", "2024-01-14", "2024-01-15"}
	for _, d := range days {
		if _, err := svc.Create(context.Background(),
			entryInput("u1", "alice", d+"T09:00:00Z", d+"T17:00:00Z")); err != nil {
			t.Fatalf("create %s failed: %v", d, err)
		}
	}

	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	week, err := svc.ListWeekly(context.Background(), "u1", start)
	if err != nil {
		t.Fatalf("weekly list failed: %v", err)
	}
	// [Jan 8, Jan 15): the Jan 15 entry is excluded.
	if len(week) != 3 {
		t.Fatalf("expected 3 entries in week, got %d", len(week))
	}
}
