package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or employee id already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrEntryNotFound      = errors.New("time entry not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrIncompleteInput    = errors.New("all fields are required")
	ErrInvalidFormat      = errors.New("invalid date format")
	ErrOverlap            = errors.New("time entry overlaps with existing entry")
	ErrNoEntries          = errors.New("no entries found")
)
