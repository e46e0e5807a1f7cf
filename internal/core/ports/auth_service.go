package ports

import (
	"context"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username   string
	Password   string
	Position   string
	EmployeeID string
	IsAdmin    bool
}

// AuthService implements registration and credential verification.
type AuthService interface {
	// Register creates an account and returns it together with a signed token.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token and the account.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
