package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("KOP_TEST_STR", "  nilai  ")
	t.Setenv("KOP_TEST_BLANK", "   ")

	assert.Equal(t, "nilai", GetEnv("KOP_TEST_STR", "def"))
	assert.Equal(t, "def", GetEnv("KOP_TEST_BLANK", "def"))
	assert.Equal(t, "def", GetEnv("KOP_TEST_MISSING", "def"))
	assert.Equal(t, "", GetEnv("KOP_TEST_MISSING"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("KOP_TEST_INT", "42")
	t.Setenv("KOP_TEST_BAD_INT", "empat")

	assert.Equal(t, 42, GetEnvInt("KOP_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("KOP_TEST_BAD_INT", 1))
	assert.Equal(t, 7, GetEnvInt("KOP_TEST_MISSING", 7))
}

func TestGetEnvBool(t *testing.T) {
	cases := map[string]bool{"true": true, "1": true, "YES": true, "on": true, "false": false, "0": false, "off": false}
	for raw, want := range cases {
		t.Setenv("KOP_TEST_BOOL", raw)
		assert.Equal(t, want, GetEnvBool("KOP_TEST_BOOL", !want), raw)
	}
	t.Setenv("KOP_TEST_BOOL", "mungkin")
	assert.True(t, GetEnvBool("KOP_TEST_BOOL", true))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("KOP_TEST_DUR", "45s")
	assert.Equal(t, 45*time.Second, GetEnvDuration("KOP_TEST_DUR", time.Second))

	t.Setenv("KOP_TEST_DUR", "-5s")
	assert.Equal(t, time.Second, GetEnvDuration("KOP_TEST_DUR", time.Second))

	t.Setenv("KOP_TEST_DUR", "sebentar")
	assert.Equal(t, time.Second, GetEnvDuration("KOP_TEST_DUR", time.Second))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("KOP_TEST_LIST", "a:9092, b:9092 ,,")
	assert.Equal(t, []string{"a:9092", "b:9092"}, GetEnvList("KOP_TEST_LIST"))
	assert.Nil(t, GetEnvList("KOP_TEST_MISSING"))
}
