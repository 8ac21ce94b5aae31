package summary

import (
	"testing"

	"github.com/nlohrer/practice-tracker/internal/domain"
	"github.com/nlohrer/practice-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_EmptySet(t *testing.T) {
	result := Summarize(nil)

	assert.Equal(t, 0, result.Amount)
	assert.Equal(t, 0, result.DayAmount)
	assert.Nil(t, result.DurationMean)
	assert.Nil(t, result.DurationVariance)
	assert.Nil(t, result.DurationMedian)
	assert.Nil(t, result.DurationMinimum)
	assert.Nil(t, result.DurationMaximum)
	assert.Nil(t, result.FirstDate)
	assert.Nil(t, result.LastDate)
}

func TestSummarize_ThreeSessions(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("learn", 140, testutil.WithDate("2020-02-04")),
		testutil.NewTestSession("learn", 110, testutil.WithDate("2020-02-04")),
		testutil.NewTestSession("learn", 20, testutil.WithDate("2021-01-01")),
	}

	result := Summarize(sessions)

	assert.Equal(t, 3, result.Amount)
	assert.Equal(t, 2, result.DayAmount)

	require.NotNil(t, result.DurationMean)
	assert.Equal(t, 90.0, *result.DurationMean)
	require.NotNil(t, result.DurationVariance)
	assert.Equal(t, 2600.0, *result.DurationVariance)

	require.NotNil(t, result.DurationMinimum)
	assert.Equal(t, domain.Duration{Hours: 0, Minutes: 20}, *result.DurationMinimum)
	require.NotNil(t, result.DurationMaximum)
	assert.Equal(t, domain.Duration{Hours: 2, Minutes: 20}, *result.DurationMaximum)
	require.NotNil(t, result.DurationMedian)
	assert.Equal(t, domain.Duration{Hours: 1, Minutes: 50}, *result.DurationMedian)

	require.NotNil(t, result.FirstDate)
	assert.Equal(t, "2020-02-04", result.FirstDate.Format(domain.DateLayout))
	require.NotNil(t, result.LastDate)
	assert.Equal(t, "2021-01-01", result.LastDate.Format(domain.DateLayout))
}

func TestSummarize_EvenCountMedianInterpolates(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("a", 20),
		testutil.NewTestSession("b", 110),
	}

	result := Summarize(sessions)

	// (20 + 110) / 2 = 65
	require.NotNil(t, result.DurationMedian)
	assert.Equal(t, domain.Duration{Hours: 1, Minutes: 5}, *result.DurationMedian)
}

func TestSummarize_MedianTruncatesToWholeMinutes(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("a", 10),
		testutil.NewTestSession("b", 21),
	}

	result := Summarize(sessions)

	// Interpolated value 15.5 is truncated for the hour/minute split.
	require.NotNil(t, result.DurationMedian)
	assert.Equal(t, domain.Duration{Hours: 0, Minutes: 15}, *result.DurationMedian)
}

func TestSummarize_SingleSession(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("solo", 75, testutil.WithDate("2022-05-01")),
	}

	result := Summarize(sessions)

	assert.Equal(t, 1, result.Amount)
	assert.Equal(t, 1, result.DayAmount)
	assert.Equal(t, 75.0, *result.DurationMean)
	assert.Equal(t, 0.0, *result.DurationVariance)
	assert.Equal(t, domain.Duration{Hours: 1, Minutes: 15}, *result.DurationMedian)
	assert.Equal(t, *result.DurationMinimum, *result.DurationMaximum)
}

func TestSummarize_UndatedSessionsCountTowardAmountOnly(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("a", 30),
		testutil.NewTestSession("b", 60),
		testutil.NewTestSession("c", 90, testutil.WithDate("2023-03-03")),
	}

	result := Summarize(sessions)

	assert.Equal(t, 3, result.Amount)
	assert.Equal(t, 1, result.DayAmount)
	require.NotNil(t, result.FirstDate)
	assert.Equal(t, result.FirstDate, result.LastDate)
}

func TestSummarize_NoDatesAtAll(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("a", 30),
		testutil.NewTestSession("b", 45),
	}

	result := Summarize(sessions)

	assert.Equal(t, 2, result.Amount)
	assert.Equal(t, 0, result.DayAmount)
	assert.Nil(t, result.FirstDate)
	assert.Nil(t, result.LastDate)
	require.NotNil(t, result.DurationMean)
	assert.Equal(t, 38.0, *result.DurationMean)
}

func TestSummarize_VarianceUsesUnroundedMean(t *testing.T) {
	// Minutes 10, 11, 12, 14: mean 11.75 (reported as 12), variance
	// E[X^2] - E[X]^2 = 140.25 - 138.0625 = 2.1875. Using the rounded
	// mean would give a different number, which must not happen.
	sessions := []*domain.Session{
		testutil.NewTestSession("a", 10),
		testutil.NewTestSession("b", 11),
		testutil.NewTestSession("c", 12),
		testutil.NewTestSession("d", 14),
	}

	result := Summarize(sessions)

	require.NotNil(t, result.DurationMean)
	assert.Equal(t, 12.0, *result.DurationMean)
	require.NotNil(t, result.DurationVariance)
	assert.InDelta(t, 2.1875, *result.DurationVariance, 1e-9)
}
