package voiceHandler

import (
	"context"
	"errors"
	"sync"
	"time"

	"SonicSavor/internal/entity"
)

var (
	ErrConnectionClosed = errors.New("voice connection closed")
	ErrNothingHeard     = errors.New("no speech recognised")
)

// frameConn is the part of a websocket connection the speech adapter needs.
type frameConn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
}

// socketSpeech plays prompts and runs recognitions on the remote client.
// Speak sends a say frame and waits for spoken; Listen sends listen and
// waits for heard or error.
type socketSpeech struct {
	conn       frameConn
	session    string
	utterances func() int

	writeMu sync.Mutex
	frames  chan entity.VoiceFrame
	done    chan struct{}
	readErr error
}

func newSocketSpeech(conn frameConn, session string) *socketSpeech {
	return &socketSpeech{
		conn:    conn,
		session: session,
		frames:  make(chan entity.VoiceFrame, 8),
		done:    make(chan struct{}),
	}
}

// pump reads client frames until the connection fails. It must run in its
// own goroutine for the lifetime of the connection.
func (s *socketSpeech) pump() {
	defer close(s.done)
	for {
		var frame entity.VoiceFrame
		if err := s.conn.ReadJSON(&frame); err != nil {
			s.readErr = err
			return
		}
		select {
		case s.frames <- frame:
		default:
			// nobody is waiting; drop
		}
	}
}

func (s *socketSpeech) send(frame entity.VoiceFrame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	frame.Session = s.session
	if err := s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return err
	}
	return s.conn.WriteJSON(frame)
}

// await blocks until a frame of one of the wanted types arrives.
func (s *socketSpeech) await(ctx context.Context, wanted ...entity.VoiceFrameType) (entity.VoiceFrame, error) {
	for {
		select {
		case <-ctx.Done():
			return entity.VoiceFrame{}, ctx.Err()
		case <-s.done:
			return entity.VoiceFrame{}, ErrConnectionClosed
		case frame := <-s.frames:
			for _, t := range wanted {
				if frame.Type == t {
					return frame, nil
				}
			}
		}
	}
}

func (s *socketSpeech) Speak(ctx context.Context, text string) error {
	frame := entity.VoiceFrame{Type: entity.VoiceFrameSay, Text: text}
	if s.utterances != nil {
		frame.Utterance = s.utterances()
	}
	if err := s.send(frame); err != nil {
		return err
	}
	_, err := s.await(ctx, entity.VoiceFrameSpoken)
	return err
}

func (s *socketSpeech) Listen(ctx context.Context) (string, error) {
	if err := s.send(entity.VoiceFrame{Type: entity.VoiceFrameListen}); err != nil {
		return "", err
	}

	frame, err := s.await(ctx, entity.VoiceFrameHeard, entity.VoiceFrameError)
	if err != nil {
		return "", err
	}
	if frame.Type == entity.VoiceFrameError {
		if frame.Reason == "" {
			return "", ErrNothingHeard
		}
		return "", errors.New(frame.Reason)
	}
	if frame.Text == "" {
		return "", ErrNothingHeard
	}
	return frame.Text, nil
}
