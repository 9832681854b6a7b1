package voiceHandler

import (
	"context"
	"errors"
	"testing"
	"time"

	"SonicSavor/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeConn feeds queued frames to ReadJSON and records writes.
type pipeConn struct {
	in  chan entity.VoiceFrame
	out chan entity.VoiceFrame
}

func newPipeConn() *pipeConn {
	return &pipeConn{in: make(chan entity.VoiceFrame, 8), out: make(chan entity.VoiceFrame, 8)}
}

func (p *pipeConn) ReadJSON(v interface{}) error {
	frame, ok := <-p.in
	if !ok {
		return errors.New("closed")
	}
	*(v.(*entity.VoiceFrame)) = frame
	return nil
}

func (p *pipeConn) WriteJSON(v interface{}) error {
	p.out <- v.(entity.VoiceFrame)
	return nil
}

func (p *pipeConn) SetWriteDeadline(time.Time) error { return nil }

func TestSocketSpeech_Speak(t *testing.T) {
	conn := newPipeConn()
	speech := newSocketSpeech(conn, "s1")
	go speech.pump()

	conn.in <- entity.VoiceFrame{Type: entity.VoiceFrameHeard, Text: "stale"}
	conn.in <- entity.VoiceFrame{Type: entity.VoiceFrameSpoken}

	require.NoError(t, speech.Speak(context.Background(), "hello"))

	sent := <-conn.out
	assert.Equal(t, entity.VoiceFrameSay, sent.Type)
	assert.Equal(t, "hello", sent.Text)
	assert.Equal(t, "s1", sent.Session)
}

func TestSocketSpeech_Listen(t *testing.T) {
	conn := newPipeConn()
	speech := newSocketSpeech(conn, "s1")
	go speech.pump()

	conn.in <- entity.VoiceFrame{Type: entity.VoiceFrameHeard, Text: "two"}
	text, err := speech.Listen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "two", text)
	assert.Equal(t, entity.VoiceFrameListen, (<-conn.out).Type)

	conn.in <- entity.VoiceFrame{Type: entity.VoiceFrameError, Reason: "no-speech"}
	_, err = speech.Listen(context.Background())
	assert.EqualError(t, err, "no-speech")

	conn.in <- entity.VoiceFrame{Type: entity.VoiceFrameHeard}
	_, err = speech.Listen(context.Background())
	assert.ErrorIs(t, err, ErrNothingHeard)
}

func TestSocketSpeech_ContextAndClose(t *testing.T) {
	conn := newPipeConn()
	speech := newSocketSpeech(conn, "s1")
	go speech.pump()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := speech.Listen(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(conn.in)
	_, err = speech.Listen(context.Background())
	assert.ErrorIs(t, err, ErrConnectionClosed)
}
