package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRange_Contains_InclusiveEndpoints(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 9, 15, 0, 0, time.UTC)
	r := DateRange{Start: start, End: end}

	assert.True(t, r.Contains(StartOfDay(start)))
	assert.True(t, r.Contains(EndOfDay(end)))
	assert.True(t, r.Contains(time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)))
}

func TestDateRange_Contains_DayGranularity(t *testing.T) {
	// The range instants carry a time of day; comparison still widens to
	// whole days.
	day := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	r := DateRange{Start: day, End: day}

	assert.True(t, r.Contains(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))
}

func TestFormatLimaTime(t *testing.T) {
	// 17:30 UTC is 12:30 in Lima (UTC-5, no DST).
	ts := time.Date(2025, 3, 10, 17, 30, 45, 0, time.UTC)

	assert.Equal(t, "10/03/2025 12:30:45", FormatLimaTime(ts))
}
