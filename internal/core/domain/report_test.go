package domain

import (
	"testing"
	"time"
)

func entryWithHours(userID, username string, hours float64) *TimeEntry {
	start := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	e := &TimeEntry{
		UserID:    userID,
		Username:  username,
		Date:      start,
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours * float64(time.Hour))),
	}
	e.ComputeHours()
	return e
}

func TestAggregate(t *testing.T) {
	entries := []*TimeEntry{
		entryWithHours("u1", "alice", 8),
		entryWithHours("u1", "alice", 13),
		entryWithHours("u1", "alice", 12),
	}

	stat := Aggregate(entries)
	if stat.TotalHours != 33.0 {
		t.Fatalf("expected 33.0 total hours, got %v", stat.TotalHours)
	}
	if stat.TotalDays != 3 {
		t.Fatalf("expected 3 total days, got %d", stat.TotalDays)
	}
	if stat.RegularDays != 2 || stat.OvertimeDays != 1 {
		t.Fatalf("expected 2 regular / 1 overtime, got %d / %d", stat.RegularDays, stat.OvertimeDays)
	}
	if stat.RegularDays+stat.OvertimeDays != stat.TotalDays {
		t.Fatalf("regular + overtime must equal total")
	}

	avg, ok := stat.AverageHours()
	if !ok {
		t.Fatalf("expected defined average")
	}
	if avg != 11.0 {
		t.Fatalf("expected 11.0 average hours, got %v", avg)
	}
}

func TestAggregate_Empty(t *testing.T) {
	stat := Aggregate(nil)
	if stat.TotalHours != 0 || stat.TotalDays != 0 || stat.RegularDays != 0 || stat.OvertimeDays != 0 {
		t.Fatalf("empty aggregation must be all zero, got %+v", stat)
	}

	if _, ok := stat.AverageHours(); ok {
		t.Fatalf("average must be undefined with zero entries")
	}
}

func TestAggregateByUser_PreservesFirstAppearanceOrder(t *testing.T) {
	entries := []*TimeEntry{
		entryWithHours("u2", "bob", 9),
		entryWithHours("u1", "alice", 13),
		entryWithHours("u2", "bob", 7),
		entryWithHours("u3", "carol", 12),
	}

	reports := AggregateByUser(entries)
	if len(reports) != 3 {
		t.Fatalf("expected 3 user reports, got %d", len(reports))
	}

	order := []string{"u2", "u1", "u3"}
	for i, want := range order {
		if reports[i].UserID != want {
			t.Fatalf("expected user %s at position %d, got %s", want, i, reports[i].UserID)
		}
	}

	bob := reports[0]
	if bob.Stat.TotalDays != 2 || bob.Stat.TotalHours != 16.0 {
		t.Fatalf("unexpected stats for bob: %+v", bob.Stat)
	}
	alice := reports[1]
	if alice.Stat.OvertimeDays != 1 || alice.Stat.RegularDays != 0 {
		t.Fatalf("unexpected stats for alice: %+v", alice.Stat)
	}

	for _, r := range reports {
		if r.Stat.RegularDays+r.Stat.OvertimeDays != r.Stat.TotalDays {
			t.Fatalf("regular + overtime must equal total for %s", r.UserID)
		}
	}
}
