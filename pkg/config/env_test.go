package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	assert.Equal(t, "value", GetEnvString("TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("TEST_STRING_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")

	assert.Equal(t, 42, GetEnvInt("TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("TEST_INT_BAD", 7))
	assert.Equal(t, 7, GetEnvInt("TEST_INT_MISSING", 7))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_DURATION_BAD", "soon")

	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION_BAD", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION_MISSING", time.Minute))
}
