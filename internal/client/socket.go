package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"SonicSavor/internal/dialogue"
	"SonicSavor/internal/entity"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// SocketURL turns the REST base URL into the dialogue websocket address.
func SocketURL(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported backend scheme %q", u.Scheme)
	}

	u.Path += "/voice/ws"
	return u.String(), nil
}

// RemoteDialogue runs a server hosted dialogue. The server decides what to
// say and when to listen; speech performs both locally.
type RemoteDialogue struct {
	url      string
	log      *logrus.Logger
	dialer   *websocket.Dialer
	onStatus func(dialogue.Status)
}

func NewRemoteDialogue(baseURL string, log *logrus.Logger) (*RemoteDialogue, error) {
	u, err := SocketURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &RemoteDialogue{url: u, log: log, dialer: websocket.DefaultDialer}, nil
}

// OnStatus registers a callback for the status frames the server sends.
func (r *RemoteDialogue) OnStatus(fn func(dialogue.Status)) {
	r.onStatus = fn
}

// Run opens one session and blocks until the server ends it, the
// connection drops, or ctx is cancelled.
func (r *RemoteDialogue) Run(ctx context.Context, speech dialogue.Speech) error {
	conn, _, err := r.dialer.DialContext(ctx, r.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", r.url, err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	if err := conn.WriteJSON(entity.VoiceFrame{Type: entity.VoiceFrameStart}); err != nil {
		return err
	}

	for {
		var frame entity.VoiceFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return err
		}

		reply, done, err := r.handle(ctx, speech, frame)
		if err != nil {
			return err
		}
		if done {
			r.log.WithFields(logrus.Fields{
				"session_id": frame.Session,
				"utterances": frame.Utterance,
			}).Debug("Remote dialogue ended")
			return nil
		}
		if reply != nil {
			if err := conn.WriteJSON(reply); err != nil {
				return err
			}
		}
	}
}

func (r *RemoteDialogue) handle(ctx context.Context, speech dialogue.Speech, frame entity.VoiceFrame) (*entity.VoiceFrame, bool, error) {
	switch frame.Type {
	case entity.VoiceFrameSay:
		if err := speech.Speak(ctx, frame.Text); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, false, err
			}
			r.log.WithField("error", err.Error()).Warn("Local playback failed")
		}
		return &entity.VoiceFrame{Type: entity.VoiceFrameSpoken}, false, nil

	case entity.VoiceFrameListen:
		text, err := speech.Listen(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, false, err
			}
			return &entity.VoiceFrame{Type: entity.VoiceFrameError, Reason: err.Error()}, false, nil
		}
		return &entity.VoiceFrame{Type: entity.VoiceFrameHeard, Text: text}, false, nil

	case entity.VoiceFrameStatus:
		if r.onStatus != nil {
			r.onStatus(dialogue.Status(frame.Status))
		}
		return nil, false, nil

	case entity.VoiceFrameEnd:
		return nil, true, nil
	}

	return nil, false, nil
}
