package domain

import "fmt"

// Duration is a sub-day time span expressed as hours and minutes.
// It is an immutable value type with no lifecycle of its own.
type Duration struct {
	Hours   int
	Minutes int
}

// DurationFromMinutes decomposes a total minute count into hours and minutes.
func DurationFromMinutes(total int) Duration {
	return Duration{Hours: total / 60, Minutes: total % 60}
}

// TotalMinutes returns the span as a total number of minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// Validate checks that hours and minutes are within range.
func (d Duration) Validate() error {
	if d.Hours < 0 || d.Hours > 23 {
		return fmt.Errorf("duration hours must be between 0 and 23, got %d", d.Hours)
	}
	if d.Minutes < 0 || d.Minutes > 59 {
		return fmt.Errorf("duration minutes must be between 0 and 59, got %d", d.Minutes)
	}
	return nil
}
