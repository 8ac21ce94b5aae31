package domain

import (
	"fmt"
	"time"
)

// SessionSearch holds the parameters for searching sessions. Every field
// is optional; absent fields impose no constraint.
type SessionSearch struct {
	// Task is a string the session task should contain, matched
	// case-insensitively.
	Task *string
	// DateFrom is the inclusive minimum date of the session.
	DateFrom *time.Time
	// DateTo is the inclusive maximum date of the session.
	DateTo *time.Time
}

// Validate checks the task search string is within length.
func (s *SessionSearch) Validate() error {
	if s.Task != nil && len(*s.Task) > MaxTaskLen {
		return fmt.Errorf("task must be at most %d characters, got %d", MaxTaskLen, len(*s.Task))
	}
	return nil
}
