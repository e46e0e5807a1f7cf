package domain

import (
	"errors"
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}

func testEntry(t *testing.T, id, userID, start, end string) *TimeEntry {
	t.Helper()
	e := &TimeEntry{
		ID:        id,
		UserID:    userID,
		Date:      mustTime(t, "2024-01-10T00:00:00Z"),
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
	}
	e.ComputeHours()
	return e
}

func TestComputeHours_Fractional(t *testing.T) {
	e := testEntry(t, "", "u1", "2024-01-10T09:00:00Z", "2024-01-10T17:30:00Z")
	if e.Hours != 8.5 {
		t.Fatalf("expected 8.5 hours, got %v", e.Hours)
	}
	if e.IsOvertime() {
		t.Fatalf("8.5 hours must not be overtime")
	}
}

func TestComputeHours_OvertimeClassification(t *testing.T) {
	e := testEntry(t, "", "u1", "2024-01-10T09:00:00Z", "2024-01-10T22:00:00Z")
	if e.Hours != 13.0 {
		t.Fatalf("expected 13.0 hours, got %v", e.Hours)
	}
	if !e.IsOvertime() {
		t.Fatalf("13 hours must be overtime")
	}

	// Exactly 12 hours is still a regular day.
	boundary := testEntry(t, "", "u1", "2024-01-10T08:00:00Z", "2024-01-10T20:00:00Z")
	if boundary.IsOvertime() {
		t.Fatalf("12 hours must not be overtime")
	}
}

func TestValidateEntry_IncompleteInput(t *testing.T) {
	e := testEntry(t, "", "u1", "2024-01-10T09:00:00Z", "2024-01-10T17:00:00Z")
	e.StartTime = time.Time{}
	if err := ValidateEntry(e, nil); !errors.Is(err, ErrIncompleteInput) {
		t.Fatalf("expected ErrIncompleteInput, got %v", err)
	}

	noOwner := testEntry(t, "", "", "2024-01-10T09:00:00Z", "2024-01-10T17:00:00Z")
	if err := ValidateEntry(noOwner, nil); !errors.Is(err, ErrIncompleteInput) {
		t.Fatalf("expected ErrIncompleteInput for missing owner, got %v", err)
	}
}

func TestValidateEntry_StartAfterEnd(t *testing.T) {
	e := testEntry(t, "", "u1", "2024-01-10T17:00:00Z", "2024-01-10T09:00:00Z")
	if err := ValidateEntry(e, nil); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	zero := testEntry(t, "", "u1", "2024-01-10T09:00:00Z", "2024-01-10T09:00:00Z")
	if err := ValidateEntry(zero, nil); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for zero-length interval, got %v", err)
	}
}

func TestValidateEntry_OverlapRejected(t *testing.T) {
	existing := testEntry(t, "e1", "u1", "2024-01-10T09:00:00Z", "2024-01-10T22:00:00Z")
	candidate := testEntry(t, "", "u1", "2024-01-10T20:00:00Z", "2024-01-10T23:00:00Z")

	if err := ValidateEntry(candidate, []*TimeEntry{existing}); !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
}

func TestValidateEntry_AdjacentIntervalsAllowed(t *testing.T) {
	existing := testEntry(t, "e1", "u1", "2024-01-10T09:00:00Z", "2024-01-10T13:00:00Z")
	candidate := testEntry(t, "", "u1", "2024-01-10T13:00:00Z", "2024-01-10T17:00:00Z")

	// [start, end) intervals: touching endpoints do not overlap.
	if err := ValidateEntry(candidate, []*TimeEntry{existing}); err != nil {
		t.Fatalf("adjacent intervals must be accepted, got %v", err)
	}
}

func TestValidateEntry_UpdateExcludesSelf(t *testing.T) {
	stored := testEntry(t, "e1", "u1", "2024-01-10T09:00:00Z", "2024-01-10T17:00:00Z")
	other := testEntry(t, "e2", "u1", "2024-01-10T18:00:00Z", "2024-01-10T20:00:00Z")

	// Same ID: the stored version of the entry being updated is skipped.
	updated := testEntry(t, "e1", "u1", "2024-01-10T10:00:00Z", "2024-01-10T16:00:00Z")
	if err := ValidateEntry(updated, []*TimeEntry{stored, other}); err != nil {
		t.Fatalf("update overlapping only itself must be accepted, got %v", err)
	}

	// Moving onto another entry still conflicts.
	conflicting := testEntry(t, "e1", "u1", "2024-01-10T17:30:00Z", "2024-01-10T19:00:00Z")
	if err := ValidateEntry(conflicting, []*TimeEntry{stored, other}); !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
}

func TestValidateEntry_ChecksOrder(t *testing.T) {
	// Incomplete input wins over a would-be overlap.
	existing := testEntry(t, "e1", "u1", "2024-01-10T09:00:00Z", "2024-01-10T22:00:00Z")
	candidate := testEntry(t, "", "u1", "2024-01-10T10:00:00Z", "2024-01-10T11:00:00Z")
	candidate.Date = time.Time{}

	if err := ValidateEntry(candidate, []*TimeEntry{existing}); !errors.Is(err, ErrIncompleteInput) {
		t.Fatalf("expected ErrIncompleteInput before overlap check, got %v", err)
	}
}
