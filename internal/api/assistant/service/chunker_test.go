package assistantService

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText_Short(t *testing.T) {
	assert.Equal(t, []string{"Burgers are 5 dollars."}, splitText("  Burgers are 5 dollars.  ", 500, 50))
	assert.Nil(t, splitText("   ", 500, 50))
}

func TestSplitText_Overlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 120)

	chunks := splitText(text, 500, 50)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Equal(t, chunks[0][450:], chunks[1][:50])
	assert.Equal(t, text[900:], chunks[2])
}

func TestSplitText_PrefersWordBoundary(t *testing.T) {
	text := strings.Repeat("word ", 150)

	chunks := splitText(text, 500, 50)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 500)
		assert.False(t, strings.HasPrefix(chunk, "ord"), "chunk starts mid-word: %q", chunk[:10])
	}
}

func TestSearchExpression(t *testing.T) {
	assert.Equal(t, "what | vegan | dishes | you | have", searchExpression("What vegan dishes do you have? vegan!"))
	assert.Equal(t, "", searchExpression("a, b?"))
}
