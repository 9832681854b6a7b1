package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := newConsole(strings.NewReader("\n  two \n\n"), &out)
	ctx := context.Background()

	require.NoError(t, c.waitStart(ctx))
	require.NoError(t, c.Speak(ctx, "Welcome!"))

	text, err := c.Listen(ctx)
	require.NoError(t, err)
	assert.Equal(t, "two", text)

	_, err = c.Listen(ctx)
	assert.ErrorIs(t, err, errNoSpeech)

	_, err = c.Listen(ctx)
	assert.ErrorIs(t, err, errInputEOF)

	assert.Contains(t, out.String(), "assistant> Welcome!")
}
