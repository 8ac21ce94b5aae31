package testutil

import (
	"time"

	"github.com/nlohrer/practice-tracker/internal/domain"
)

// Session options
type SessionOption func(*domain.Session)

func WithUsername(name string) SessionOption {
	return func(s *domain.Session) {
		s.Username = &name
	}
}

func WithDate(date string) SessionOption {
	return func(s *domain.Session) {
		t, err := time.Parse(domain.DateLayout, date)
		if err != nil {
			panic("bad fixture date: " + date)
		}
		s.Date = &t
	}
}

func WithTimeOfDay(clock string) SessionOption {
	return func(s *domain.Session) {
		t, err := time.Parse(domain.TimeLayout, clock)
		if err != nil {
			panic("bad fixture time: " + clock)
		}
		s.TimeOfDay = &t
	}
}

// NewTestSession creates an unassigned session for the given task and
// total duration in minutes.
func NewTestSession(task string, minutes int, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		Task:     task,
		Duration: domain.DurationFromMinutes(minutes),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// User options
type UserOption func(*domain.User)

func WithGroup(group string) UserOption {
	return func(u *domain.User) {
		u.Group = &group
	}
}

// NewTestUser creates a user with the given name.
func NewTestUser(name string, opts ...UserOption) *domain.User {
	u := &domain.User{Username: name}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
