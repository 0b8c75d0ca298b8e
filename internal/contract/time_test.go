package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var reference = time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

// TestCalcTimediffInvalid ensures malformed dates never crash the caller.
func TestCalcTimediffInvalid(t *testing.T) {
	tests := []string{"2020 A", "", "15.06.2024", "2024-13-40", "yesterday"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, ok := CalcTimediff(reference, input)
			assert.False(t, ok)
		})
	}
}

// TestCalcTimediff covers past, same-day and future dates.
func TestCalcTimediff(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected int
	}{
		{"one week ago", "2024-06-08", 7},
		{"same day", "2024-06-15", 0},
		{"future date", "2024-06-20", -5},
		{"one year ago", "2023-06-15", 366}, // 2024 is a leap year
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := CalcTimediff(reference, tt.date)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, days)
		})
	}
}

// TestCalcTimediffIgnoresClock verifies the reference clock time is irrelevant.
func TestCalcTimediffIgnoresClock(t *testing.T) {
	late := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)
	early := time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC)

	lateDays, ok := CalcTimediff(late, "2024-06-01")
	assert.True(t, ok)
	earlyDays, ok := CalcTimediff(early, "2024-06-01")
	assert.True(t, ok)
	assert.Equal(t, lateDays, earlyDays)
	assert.Equal(t, 14, lateDays)
}
