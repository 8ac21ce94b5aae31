package domain

import (
	"fmt"
	"time"
)

// Layouts for the calendar-date and time-of-day representations used
// throughout the system. Neither carries a time zone.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Limits on user-supplied string fields.
const (
	MaxTaskLen     = 50
	MaxUsernameLen = 20
)

// Session is one logged practice record. Username is nil for unassigned
// sessions, which form their own bucket distinct from every concrete
// username. Date and TimeOfDay are independent of each other and both
// optional.
type Session struct {
	ID        int64
	Username  *string
	Task      string
	Duration  Duration
	Date      *time.Time
	TimeOfDay *time.Time
}

// Validate checks the entity invariants: a non-empty task of at most
// MaxTaskLen characters, a valid duration and a username of at most
// MaxUsernameLen characters when present.
func (s *Session) Validate() error {
	if s.Task == "" {
		return fmt.Errorf("task is required")
	}
	if len(s.Task) > MaxTaskLen {
		return fmt.Errorf("task must be at most %d characters, got %d", MaxTaskLen, len(s.Task))
	}
	if err := s.Duration.Validate(); err != nil {
		return err
	}
	if s.Username != nil && len(*s.Username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters, got %d", MaxUsernameLen, len(*s.Username))
	}
	return nil
}
