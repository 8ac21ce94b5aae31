package domain

import "time"

// SessionSummary is a derived, non-persisted aggregate over one user's
// sessions at a point in time. Every duration- and date-derived field is
// nil when Amount is zero; FirstDate and LastDate are also nil when no
// session carries a date.
type SessionSummary struct {
	// Amount of practice sessions.
	Amount int
	// DayAmount counts the distinct dates practiced on. Sessions without
	// a date contribute to Amount but not to DayAmount.
	DayAmount int
	// DurationMean is the mean practice duration in minutes, rounded to
	// the nearest whole minute.
	DurationMean *float64
	// DurationVariance is the variance of the practice duration in square
	// minutes, computed from the unrounded mean.
	DurationVariance *float64
	// DurationMedian is the 50th-percentile practice duration.
	DurationMedian *Duration
	// DurationMinimum is the shortest practice duration.
	DurationMinimum *Duration
	// DurationMaximum is the longest practice duration.
	DurationMaximum *Duration
	// FirstDate is the date of the earliest dated session.
	FirstDate *time.Time
	// LastDate is the date of the latest dated session.
	LastDate *time.Time
}
