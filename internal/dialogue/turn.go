package dialogue

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	contextPkg "SonicSavor/pkg/context"
	"github.com/sirupsen/logrus"
)

var (
	ErrCaptureInProgress = errors.New("a capture is already active")
	ErrCaptureTimeout    = errors.New("capture timed out")
	ErrSpeakTimeout      = errors.New("speech playback timed out")
)

// Speech is the playback and recognition capability. Speak returns once the
// text has finished playing. Listen performs one single-shot recognition and
// returns either the recognised text or an error, never both.
type Speech interface {
	Speak(ctx context.Context, text string) error
	Listen(ctx context.Context) (string, error)
}

// TurnExecutor performs the prompt and capture halves of a turn, logging
// every utterance before it is acted on.
type TurnExecutor struct {
	speech         Speech
	conversation   *Conversation
	session        *Session
	log            *logrus.Logger
	speakTimeout   time.Duration
	captureTimeout time.Duration

	capturing atomic.Bool
}

func NewTurnExecutor(speech Speech, conversation *Conversation, session *Session, log *logrus.Logger, speakTimeout, captureTimeout time.Duration) *TurnExecutor {
	return &TurnExecutor{
		speech:         speech,
		conversation:   conversation,
		session:        session,
		log:            log,
		speakTimeout:   speakTimeout,
		captureTimeout: captureTimeout,
	}
}

// Prompt logs text as an assistant utterance and blocks until playback ends.
func (t *TurnExecutor) Prompt(ctx context.Context, text string) error {
	t.conversation.Append(SpeakerAssistant, text)

	c, cancel := withOptionalTimeout(ctx, t.speakTimeout)
	defer cancel()

	if err := t.speech.Speak(c, text); err != nil {
		if errors.Is(c.Err(), context.DeadlineExceeded) {
			err = ErrSpeakTimeout
		}
		t.log.WithFields(logrus.Fields{
			"session_id": contextPkg.GetSessionID(ctx),
			"error":      err.Error(),
		}).Warn("Speech playback failed")
		return err
	}

	return nil
}

// Capture runs one recognition attempt. Only one capture may be active per
// session; a second concurrent call fails with ErrCaptureInProgress.
func (t *TurnExecutor) Capture(ctx context.Context) (string, error) {
	if !t.capturing.CompareAndSwap(false, true) {
		return "", ErrCaptureInProgress
	}
	defer t.capturing.Store(false)

	t.session.SetStatus(StatusListening)

	c, cancel := withOptionalTimeout(ctx, t.captureTimeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := t.speech.Listen(c)
		done <- result{text, err}
	}()

	var res result
	select {
	case res = <-done:
	case <-c.Done():
		res = result{err: c.Err()}
	}
	if res.err != nil && ctx.Err() == nil && errors.Is(c.Err(), context.DeadlineExceeded) {
		res.err = ErrCaptureTimeout
	}

	if res.err != nil {
		captureFailures.Inc()
		t.log.WithFields(logrus.Fields{
			"session_id": contextPkg.GetSessionID(ctx),
			"error":      res.err.Error(),
		}).Warn("Capture failed")
		return "", fmt.Errorf("capture: %w", res.err)
	}

	t.conversation.Append(SpeakerUser, res.text)
	return res.text, nil
}

// Ask prompts and then captures, in that order.
func (t *TurnExecutor) Ask(ctx context.Context, text string) (string, error) {
	if err := t.Prompt(ctx, text); err != nil {
		return "", err
	}
	return t.Capture(ctx)
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
