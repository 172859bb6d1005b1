package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ─────────────────── ValidateCronSchedule ───────────────────

func TestValidateCronSchedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		wantErr  bool
	}{
		{"every 30 minutes", "*/30 * * * *", false},
		{"hourly", "0 * * * *", false},
		{"daily at 06:15", "15 6 * * *", false},
		{"weekday mornings", "0 9 * * 1-5", false},
		{"empty", "", true},
		{"too few fields", "* * *", true},
		{"six fields", "0 0 * * * *", true},
		{"minute out of range", "99 * * * *", true},
		{"garbage", "soonish", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ─────────────────── ValidateTimezone ───────────────────

func TestValidateTimezone(t *testing.T) {
	assert.NoError(t, ValidateTimezone("UTC"))
	assert.NoError(t, ValidateTimezone("Asia/Tokyo"))
	assert.NoError(t, ValidateTimezone("America/New_York"))

	assert.Error(t, ValidateTimezone(""))
	assert.Error(t, ValidateTimezone("Not/AZone"))
}

// ─────────────────── ValidateDuration ───────────────────

func TestValidateDuration(t *testing.T) {
	min, max := time.Minute, 4*time.Hour

	assert.NoError(t, ValidateDuration(10*time.Minute, min, max))
	assert.NoError(t, ValidateDuration(min, min, max))
	assert.NoError(t, ValidateDuration(max, min, max))

	assert.Error(t, ValidateDuration(30*time.Second, min, max))
	assert.Error(t, ValidateDuration(5*time.Hour, min, max))
}

func TestValidateDuration_InvertedRange(t *testing.T) {
	err := ValidateDuration(time.Minute, time.Hour, time.Second)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid range")
}

// ─────────────────── ValidateIntRange ───────────────────

func TestValidateIntRange(t *testing.T) {
	assert.NoError(t, ValidateIntRange(25, 1, 50))
	assert.NoError(t, ValidateIntRange(1, 1, 50))
	assert.NoError(t, ValidateIntRange(50, 1, 50))

	assert.Error(t, ValidateIntRange(0, 1, 50))
	assert.Error(t, ValidateIntRange(51, 1, 50))
	assert.Error(t, ValidateIntRange(5, 10, 1))
}

// ─────────────────── ValidatePositiveDuration ───────────────────

func TestValidatePositiveDuration(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Millisecond))
	assert.NoError(t, ValidatePositiveDuration(time.Hour))

	assert.Error(t, ValidatePositiveDuration(0))
	assert.Error(t, ValidatePositiveDuration(-time.Second))
}
