package domain

// ReportStat aggregates a user's entries over a period.
// RegularDays + OvertimeDays always equals TotalDays.
type ReportStat struct {
	TotalHours   float64 `json:"total_hours"`
	TotalDays    int     `json:"total_days"`
	RegularDays  int     `json:"regular_days"`
	OvertimeDays int     `json:"overtime_days"`
}

// AverageHours returns TotalHours / TotalDays. The second return value is
// false when there are no entries; callers must render that as "no data"
// rather than dividing by zero.
func (s ReportStat) AverageHours() (float64, bool) {
	if s.TotalDays == 0 {
		return 0, false
	}
	return s.TotalHours / float64(s.TotalDays), true
}

// Aggregate folds a sequence of entries into a ReportStat. One entry counts
// as one day; hours accumulate unrounded.
func Aggregate(entries []*TimeEntry) ReportStat {
	var stat ReportStat
	for _, e := range entries {
		stat.TotalHours += e.Hours
		stat.TotalDays++
		if e.IsOvertime() {
			stat.OvertimeDays++
		} else {
			stat.RegularDays++
		}
	}
	return stat
}

// UserReport is one user's sub-aggregation within a multi-user period report.
type UserReport struct {
	UserID     string       `json:"user_id"`
	Username   string       `json:"username"`
	Position   string       `json:"position"`
	EmployeeID string       `json:"employee_id"`
	Stat       ReportStat   `json:"stat"`
	Entries    []*TimeEntry `json:"entries,omitempty"`
}

// AggregateByUser groups entries by owner and aggregates each group
// independently. Groups appear in order of first appearance in the input.
func AggregateByUser(entries []*TimeEntry) []*UserReport {
	index := make(map[string]*UserReport)
	var reports []*UserReport
	for _, e := range entries {
		r, ok := index[e.UserID]
		if !ok {
			r = &UserReport{
				UserID:   e.UserID,
				Username: e.Username,
				Position: e.Position,
			}
			index[e.UserID] = r
			reports = append(reports, r)
		}
		r.Entries = append(r.Entries, e)
	}
	for _, r := range reports {
		r.Stat = Aggregate(r.Entries)
	}
	return reports
}
