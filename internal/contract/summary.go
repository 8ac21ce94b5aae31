package contract

import (
	"github.com/nlohrer/practice-tracker/internal/domain"
)

// SessionSummary is the wire shape of the per-user aggregate statistics.
// Every duration- and date-derived field is omitted when amount is zero.
type SessionSummary struct {
	Amount           int       `json:"amount"`
	DayAmount        int       `json:"dayAmount"`
	DurationMean     *float64  `json:"durationMean,omitempty"`
	DurationVariance *float64  `json:"durationVariance,omitempty"`
	DurationMedian   *Duration `json:"durationMedian,omitempty"`
	DurationMinimum  *Duration `json:"durationMinimum,omitempty"`
	DurationMaximum  *Duration `json:"durationMaximum,omitempty"`
	FirstDate        *string   `json:"firstDate,omitempty"`
	LastDate         *string   `json:"lastDate,omitempty"`
}

// SummaryFromDomain maps the domain summary to its wire shape.
func SummaryFromDomain(s domain.SessionSummary) SessionSummary {
	return SessionSummary{
		Amount:           s.Amount,
		DayAmount:        s.DayAmount,
		DurationMean:     s.DurationMean,
		DurationVariance: s.DurationVariance,
		DurationMedian:   durationFromDomain(s.DurationMedian),
		DurationMinimum:  durationFromDomain(s.DurationMinimum),
		DurationMaximum:  durationFromDomain(s.DurationMaximum),
		FirstDate:        formatOptional(s.FirstDate, domain.DateLayout),
		LastDate:         formatOptional(s.LastDate, domain.DateLayout),
	}
}

func durationFromDomain(d *domain.Duration) *Duration {
	if d == nil {
		return nil
	}
	return &Duration{Hours: d.Hours, Minutes: d.Minutes}
}
