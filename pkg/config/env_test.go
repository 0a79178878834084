package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("KEYHAVEN_TEST_VAR", "value")
	assert.Equal(t, "value", GetEnv("KEYHAVEN_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("KEYHAVEN_TEST_UNSET", "fallback"))
}

func TestGetEnvSeconds(t *testing.T) {
	t.Setenv("KEYHAVEN_TEST_TTL", "300")
	assert.Equal(t, 5*time.Minute, GetEnvSeconds("KEYHAVEN_TEST_TTL", 0))

	t.Setenv("KEYHAVEN_TEST_TTL", "not-a-number")
	assert.Equal(t, time.Second, GetEnvSeconds("KEYHAVEN_TEST_TTL", time.Second))

	t.Setenv("KEYHAVEN_TEST_TTL", "-5")
	assert.Equal(t, time.Second, GetEnvSeconds("KEYHAVEN_TEST_TTL", time.Second))

	assert.Equal(t, time.Second, GetEnvSeconds("KEYHAVEN_TEST_UNSET", time.Second))
}
