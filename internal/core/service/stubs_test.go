package service

import (
	"context"
	"strconv"
	"time"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.EmployeeID == user.EmployeeID {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = "u" + strconv.Itoa(r.nextID)
	r.users[clone.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

// stubEntryRepo is an in-memory ports.EntryRepository.
type stubEntryRepo struct {
	entries []*domain.TimeEntry
	nextID  int
}

func newStubEntryRepo() *stubEntryRepo {
	return &stubEntryRepo{}
}

func (r *stubEntryRepo) Insert(_ context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	r.nextID++
	clone := *entry
	clone.ID = "e" + strconv.Itoa(r.nextID)
	r.entries = append(r.entries, &clone)
	return &clone, nil
}

func (r *stubEntryRepo) Update(_ context.Context, entry *domain.TimeEntry) error {
	for i, e := range r.entries {
		if e.ID == entry.ID {
			clone := *entry
			r.entries[i] = &clone
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (r *stubEntryRepo) Delete(_ context.Context, id, userID string) error {
	for i, e := range r.entries {
		if e.ID == id && e.UserID == userID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (r *stubEntryRepo) FindByID(_ context.Context, id string) (*domain.TimeEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (r *stubEntryRepo) FindByUser(_ context.Context, userID string) ([]*domain.TimeEntry, error) {
	var out []*domain.TimeEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) FindByUserAndDate(_ context.Context, userID string, date time.Time) ([]*domain.TimeEntry, error) {
	var out []*domain.TimeEntry
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		y1, m1, d1 := e.Date.UTC().Date()
		y2, m2, d2 := date.UTC().Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) FindByUserInRange(_ context.Context, userID string, from, to time.Time) ([]*domain.TimeEntry, error) {
	var out []*domain.TimeEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) FindByUserInPeriod(_ context.Context, userID string, month time.Month, year int) ([]*domain.TimeEntry, error) {
	var out []*domain.TimeEntry
	for _, e := range r.entries {
		if e.UserID == userID && e.Date.Month() == month && e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) FindAllInPeriod(_ context.Context, month time.Month, year int) ([]*domain.TimeEntry, error) {
	var out []*domain.TimeEntry
	for _, e := range r.entries {
		if e.Date.Month() == month && e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) FindAll(_ context.Context) ([]*domain.TimeEntry, error) {
	return r.entries, nil
}

// stubNotifier records delivered messages and can be made to fail.
type stubNotifier struct {
	messages []string
	err      error
}

func (n *stubNotifier) Notify(_ context.Context, text string) error {
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, text)
	return nil
}
