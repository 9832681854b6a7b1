package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"SonicSavor/internal/dialogue"
	"SonicSavor/internal/entity"
	"SonicSavor/pkg/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketURL(t *testing.T) {
	u, err := SocketURL("http://localhost:8000/api/v1/")
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8000/api/v1/voice/ws", u)

	u, err = SocketURL("https://savor.example/api/v1")
	require.NoError(t, err)
	assert.Equal(t, "wss://savor.example/api/v1/voice/ws", u)

	_, err = SocketURL("ftp://savor.example")
	assert.Error(t, err)
}

type recordingSpeech struct {
	spoken []string
	heard  []string
	fail   bool
}

func (s *recordingSpeech) Speak(_ context.Context, text string) error {
	s.spoken = append(s.spoken, text)
	return nil
}

func (s *recordingSpeech) Listen(context.Context) (string, error) {
	if s.fail {
		return "", errors.New("no-speech")
	}
	if len(s.heard) == 0 {
		return "", errors.New("nothing scripted")
	}
	next := s.heard[0]
	s.heard = s.heard[1:]
	return next, nil
}

// scriptedServer plays the server side: it greets, listens once and ends,
// recording what the client replied.
func scriptedServer(t *testing.T, replies chan<- entity.VoiceFrame) *httptest.Server {
	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		var start entity.VoiceFrame
		if err := conn.ReadJSON(&start); err != nil || start.Type != entity.VoiceFrameStart {
			t.Errorf("expected start frame, got %+v (%v)", start, err)
			return
		}

		script := []entity.VoiceFrame{
			{Type: entity.VoiceFrameStatus, Status: "listening"},
			{Type: entity.VoiceFrameSay, Text: "Welcome!"},
			{Type: entity.VoiceFrameListen},
		}
		for _, frame := range script {
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
			if frame.Type == entity.VoiceFrameStatus {
				continue
			}
			var reply entity.VoiceFrame
			if err := conn.ReadJSON(&reply); err != nil {
				return
			}
			replies <- reply
		}
		_ = conn.WriteJSON(entity.VoiceFrame{Type: entity.VoiceFrameEnd, Session: "s1"})
	}))
}

func TestRemoteDialogue_Run(t *testing.T) {
	replies := make(chan entity.VoiceFrame, 4)
	srv := scriptedServer(t, replies)
	defer srv.Close()

	remote, err := NewRemoteDialogue(srv.URL, log.NewDiscardLogger())
	require.NoError(t, err)

	var statuses []dialogue.Status
	remote.OnStatus(func(s dialogue.Status) { statuses = append(statuses, s) })

	speech := &recordingSpeech{heard: []string{"two"}}
	require.NoError(t, remote.Run(context.Background(), speech))

	assert.Equal(t, []string{"Welcome!"}, speech.spoken)
	assert.Equal(t, []dialogue.Status{dialogue.StatusListening}, statuses)
	assert.Equal(t, entity.VoiceFrameSpoken, (<-replies).Type)
	heard := <-replies
	assert.Equal(t, entity.VoiceFrameHeard, heard.Type)
	assert.Equal(t, "two", heard.Text)
}

func TestRemoteDialogue_ListenError(t *testing.T) {
	replies := make(chan entity.VoiceFrame, 4)
	srv := scriptedServer(t, replies)
	defer srv.Close()

	remote, err := NewRemoteDialogue(srv.URL, log.NewDiscardLogger())
	require.NoError(t, err)

	require.NoError(t, remote.Run(context.Background(), &recordingSpeech{fail: true}))

	<-replies
	errFrame := <-replies
	assert.Equal(t, entity.VoiceFrameError, errFrame.Type)
	assert.Equal(t, "no-speech", errFrame.Reason)
}
