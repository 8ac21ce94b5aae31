// Package summary derives per-user aggregate statistics from a set of
// practice sessions in a single linear pass.
package summary

import (
	"math"
	"sort"
	"time"

	"github.com/nlohrer/practice-tracker/internal/domain"
)

// Summarize computes the aggregate statistics over exactly one user's
// sessions. The empty set is a normal outcome and yields a zero summary
// with every derived field absent.
//
// The variance is the computational one, mean(m²) − mean(m)², taken over
// the unrounded means; only the reported mean is rounded to a whole
// minute. The median interpolates between the two central order
 // statistics of the raw minute values and is truncated to whole minutes
// when decomposed into a Duration.
func Summarize(sessions []*domain.Session) domain.SessionSummary {
	n := len(sessions)
	if n == 0 {
		return domain.SessionSummary{}
	}

	minutes := make([]float64, 0, n)
	days := make(map[string]struct{}, n)
	var sum, squaredSum float64
	var firstDate, lastDate *time.Time

	for _, s := range sessions {
		m := float64(s.Duration.TotalMinutes())
		minutes = append(minutes, m)
		sum += m
		squaredSum += m * m

		if s.Date == nil {
			continue
		}
		days[s.Date.Format(domain.DateLayout)] = struct{}{}
		if firstDate == nil || s.Date.Before(*firstDate) {
			firstDate = s.Date
		}
		if lastDate == nil || s.Date.After(*lastDate) {
			lastDate = s.Date
		}
	}

	mean := sum / float64(n)
	squaredMean := squaredSum / float64(n)
	variance := squaredMean - mean*mean
	reportedMean := math.Round(mean)

	sort.Float64s(minutes)
	median := domain.DurationFromMinutes(int(percentile(minutes, 0.5)))
	minimum := domain.DurationFromMinutes(int(minutes[0]))
	maximum := domain.DurationFromMinutes(int(minutes[n-1]))

	return domain.SessionSummary{
		Amount:           n,
		DayAmount:        len(days),
		DurationMean:     &reportedMean,
		DurationVariance: &variance,
		DurationMedian:   &median,
		DurationMinimum:  &minimum,
		DurationMaximum:  &maximum,
		FirstDate:        firstDate,
		LastDate:         lastDate,
	}
}

// percentile returns the p-quantile of sorted values using continuous
// interpolation between adjacent order statistics, matching
// percentile_cont. values must be sorted and non-empty.
func percentile(values []float64, p float64) float64 {
	if len(values) == 1 {
		return values[0]
	}
	rank := p * float64(len(values)-1)
	lower := int(math.Floor(rank))
	frac := rank - float64(lower)
	if frac == 0 {
		return values[lower]
	}
	return values[lower] + frac*(values[lower+1]-values[lower])
}
