package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithConsoleSink(t *testing.T) {
	l, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, l)
	l.Info("search completed")
}

func TestWithCorrelationIDAddsField(t *testing.T) {
	l, err := New(DefaultConfig())
	require.NoError(t, err)

	child := l.WithCorrelationID("abc-123")
	assert.NotNil(t, child)
	child.Debug("strategy call")
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, parseLevel("bogus").String(), "info")
	assert.Equal(t, parseLevel("debug").String(), "debug")
	assert.Equal(t, parseLevel("warn").String(), "warn")
	assert.Equal(t, parseLevel("error").String(), "error")
}
