package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientLogger(t *testing.T) {
	l := NewClientLogger("test")
	require.NotNil(t, l)

	// Must not panic when logging through the embedded zerolog.Logger.
	l.Debug().Str("key", "value").Msg("debug message")
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Error().Msg("discarded")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext(t *testing.T) {
	base := zerolog.Nop()
	ctx := base.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)
}
