package domain

import "time"

// OvertimeThresholdHours separates regular days from overtime days.
const OvertimeThresholdHours = 12

// OvertimeReasonCompanyRequest is the overtime reason that additionally
// records the person who requested the extra hours.
const OvertimeReasonCompanyRequest = "Company Request"

// TimeEntry is one recorded work interval for a user on a calendar date.
// Username and Position are denormalized from the owning User so reports
// can be rendered from entries alone.
type TimeEntry struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Username          string    `json:"username"`
	Position          string    `json:"position"`
	Date              time.Time `json:"date"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	Hours             float64   `json:"hours"`
	OvertimeReason    *string   `json:"overtime_reason,omitempty"`
	ResponsiblePerson string    `json:"responsible_person,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ComputeHours derives Hours from the [StartTime, EndTime) interval in
// fractional hours. No rounding; display formatting rounds, not the model.
func (e *TimeEntry) ComputeHours() {
	e.Hours = e.EndTime.Sub(e.StartTime).Hours()
}

// IsOvertime reports whether the entry counts as an overtime day.
// Overtime is flagged for reporting, never rejected.
func (e *TimeEntry) IsOvertime() bool {
	return e.Hours > OvertimeThresholdHours
}

// Overlaps reports whether two [start, end) intervals intersect.
func Overlaps(a, b *TimeEntry) bool {
	return a.StartTime.Before(b.EndTime) && a.EndTime.After(b.StartTime)
}

// ValidateEntry decides acceptance of a candidate entry against the other
// entries already recorded for the same owner and date. Checks run in a
// fixed order: field completeness, interval sanity, then overlap. An
// existing entry sharing the candidate's ID is skipped so updates can
// re-validate against their own stored state.
func ValidateEntry(candidate *TimeEntry, existing []*TimeEntry) error {
	if candidate.UserID == "" || candidate.Date.IsZero() || candidate.StartTime.IsZero() || candidate.EndTime.IsZero() {
		return ErrIncompleteInput
	}
	if !candidate.StartTime.Before(candidate.EndTime) {
		return ErrInvalidFormat
	}
	for _, other := range existing {
		if other.ID != "" && other.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate, other) {
			return ErrOverlap
		}
	}
	return nil
}
