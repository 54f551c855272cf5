package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("KORA_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("KORA_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("KORA_TEST_MISSING", "fallback"))

	t.Setenv("KORA_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("KORA_TEST_EMPTY", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("KORA_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("KORA_TEST_INT", 7))

	t.Setenv("KORA_TEST_BAD_INT", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("KORA_TEST_BAD_INT", 7))
	assert.Equal(t, 7, GetIntEnv("KORA_TEST_INT_MISSING", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("KORA_TEST_DUR", "45s")
	assert.Equal(t, 45*time.Second, GetDurationEnv("KORA_TEST_DUR", time.Minute))

	t.Setenv("KORA_TEST_BAD_DUR", "soon")
	assert.Equal(t, time.Minute, GetDurationEnv("KORA_TEST_BAD_DUR", time.Minute))
}
