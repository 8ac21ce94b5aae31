// Package contract defines the wire representations exchanged with the
// transport layer and their mapping to domain entities. Dates travel as
// "2006-01-02" strings, times of day as "15:04:05" strings; ids are
// server-assigned and read-only on input.
package contract

import (
	"fmt"
	"time"

	"github.com/nlohrer/practice-tracker/internal/domain"
)

// Duration represents a duration in hours and minutes.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Session is the id-less representation of a practice session, used for
// create/update input and search results.
type Session struct {
	Task     string   `json:"task"`
	Duration Duration `json:"duration"`
	Date     *string  `json:"date,omitempty"`
	Time     *string  `json:"time,omitempty"`
}

// SessionResponse is a Session together with its server-assigned id.
type SessionResponse struct {
	ID int64 `json:"id"`
	Session
}

// ToDomain validates the representation and maps it to a domain session.
// The username travels outside the body and is validated alongside it; a
// nil username leaves the session unassigned. On failure the returned
// ValidationError carries one message per offending field.
func (s Session) ToDomain(username *string) (*domain.Session, *ValidationError) {
	verr := newValidationError()

	if s.Task == "" {
		verr.add("task", "please specify what you did")
	} else if len(s.Task) > domain.MaxTaskLen {
		verr.add("task", fmt.Sprintf("must be at most %d characters", domain.MaxTaskLen))
	}
	if s.Duration.Hours < 0 || s.Duration.Hours > 23 {
		verr.add("duration.hours", "must be between 0 and 23")
	}
	if s.Duration.Minutes < 0 || s.Duration.Minutes > 59 {
		verr.add("duration.minutes", "must be between 0 and 59")
	}
	if username != nil && len(*username) > domain.MaxUsernameLen {
		verr.add("username", fmt.Sprintf("must be at most %d characters", domain.MaxUsernameLen))
	}

	date := parseOptional(s.Date, domain.DateLayout, "date", verr)
	timeOfDay := parseOptional(s.Time, domain.TimeLayout, "time", verr)

	if v := verr.orNil(); v != nil {
		return nil, v
	}
	return &domain.Session{
		Username:  username,
		Task:      s.Task,
		Duration:  domain.Duration{Hours: s.Duration.Hours, Minutes: s.Duration.Minutes},
		Date:      date,
		TimeOfDay: timeOfDay,
	}, nil
}

// SessionFromDomain maps a domain session to its id-less representation.
func SessionFromDomain(s *domain.Session) Session {
	return Session{
		Task:     s.Task,
		Duration: Duration{Hours: s.Duration.Hours, Minutes: s.Duration.Minutes},
		Date:     formatOptional(s.Date, domain.DateLayout),
		Time:     formatOptional(s.TimeOfDay, domain.TimeLayout),
	}
}

// ResponseFromDomain maps a domain session to its full representation.
func ResponseFromDomain(s *domain.Session) SessionResponse {
	return SessionResponse{ID: s.ID, Session: SessionFromDomain(s)}
}

func parseOptional(value *string, layout, field string, verr *ValidationError) *time.Time {
	if value == nil {
		return nil
	}
	t, err := time.Parse(layout, *value)
	if err != nil {
		verr.add(field, fmt.Sprintf("must be formatted as %s", layout))
		return nil
	}
	return &t
}

func formatOptional(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	v := t.Format(layout)
	return &v
}
