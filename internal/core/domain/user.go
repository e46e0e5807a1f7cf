package domain

import "time"

const (
	PositionWorker = "worker"
	PositionRider  = "rider"
)

// User models a registered employee account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Position     string    `json:"position"`
	EmployeeID   string    `json:"employee_id"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidPosition reports whether p is a known employee position.
func ValidPosition(p string) bool {
	return p == PositionWorker || p == PositionRider
}

// PositionLabel returns the human-readable form used in reports.
func PositionLabel(p string) string {
	if p == PositionRider {
		return "Rider"
	}
	return "Worker"
}
