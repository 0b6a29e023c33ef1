package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()

	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
}

func TestFormatKV(t *testing.T) {
	assert.Equal(t, "plain", formatKV("plain"))
	assert.Equal(t, "req method=GET status=200", formatKV("req", "method", "GET", "status", 200))
	assert.Equal(t, "req dangling", formatKV("req", "dangling"))
}
