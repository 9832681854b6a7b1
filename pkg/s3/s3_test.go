package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromLocation(t *testing.T) {
	assert.Equal(t, "documents/01J-menu.txt", KeyFromLocation("https://bucket.s3.amazonaws.com/documents/01J-menu.txt"))
	assert.Equal(t, "plain-key", KeyFromLocation("plain-key"))
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "documents/01J-menu.txt", ObjectKey("documents", "01J", "../../menu.txt"))
	assert.Equal(t, "tts/abc-reply.mp3", ObjectKey("tts", "abc", "reply.mp3"))
}
