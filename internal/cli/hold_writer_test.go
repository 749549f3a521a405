package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldWriter_PassThroughByDefault(t *testing.T) {
	var out bytes.Buffer
	h := newHoldWriter(&out)

	_, err := h.Write([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, "a", out.String())
}

func TestHoldWriter_BuffersUntilRelease(t *testing.T) {
	var out bytes.Buffer
	h := newHoldWriter(&out)

	h.Hold()
	_, _ = h.Write([]byte("held "))
	_, _ = h.Write([]byte("lines"))
	assert.Empty(t, out.String())

	require.NoError(t, h.Release())
	assert.Equal(t, "held lines", out.String())

	_, _ = h.Write([]byte("!"))
	assert.Equal(t, "held lines!", out.String())
}
