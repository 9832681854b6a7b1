package dialogue

import (
	"context"
	"errors"
	"testing"
	"time"

	"SonicSavor/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTurn(speech Speech, captureTimeout time.Duration) (*TurnExecutor, *Conversation, *Session) {
	conversation := NewConversation()
	session := NewSession("test")
	return NewTurnExecutor(speech, conversation, session, log.NewDiscardLogger(), time.Second, captureTimeout), conversation, session
}

func TestCapture_TimesOut(t *testing.T) {
	turn, conversation, _ := newTestTurn(&blockingSpeech{}, 20*time.Millisecond)

	text, err := turn.Capture(context.Background())

	assert.Empty(t, text)
	assert.ErrorIs(t, err, ErrCaptureTimeout)
	assert.Equal(t, 0, conversation.Len())
}

func TestCapture_RejectsConcurrentCapture(t *testing.T) {
	speech := &blockingSpeech{started: make(chan struct{}, 1)}
	turn, _, _ := newTestTurn(speech, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := turn.Capture(ctx)
		done <- err
	}()

	<-speech.started
	_, err := turn.Capture(context.Background())
	assert.ErrorIs(t, err, ErrCaptureInProgress)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestCapture_ExactlyOneOutcome(t *testing.T) {
	speech := newScriptedSpeech("hello").fail(errors.New("network"))
	turn, conversation, session := newTestTurn(speech, time.Second)

	text, err := turn.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, StatusListening, session.Status())

	text, err = turn.Capture(context.Background())
	assert.Error(t, err)
	assert.Empty(t, text)

	assert.Equal(t, 1, conversation.Len())
}

func TestAsk_PromptCompletesBeforeCapture(t *testing.T) {
	speech := newScriptedSpeech("two")
	turn, conversation, _ := newTestTurn(speech, time.Second)

	answer, err := turn.Ask(context.Background(), "Pick one")
	require.NoError(t, err)
	assert.Equal(t, "two", answer)

	assert.Equal(t, []string{"Pick one"}, speech.Spoken())
	utterances := conversation.Utterances()
	require.Len(t, utterances, 2)
	assert.Equal(t, SpeakerAssistant, utterances[0].Speaker)
	assert.Equal(t, SpeakerUser, utterances[1].Speaker)
}

func TestConversation_ObserversSeeEveryAppend(t *testing.T) {
	c := NewConversation()

	var seen []string
	c.Observe(func(u Utterance) { seen = append(seen, string(u.Speaker)+":"+u.Text) })

	c.Append(SpeakerAssistant, "hi")
	c.Append(SpeakerUser, "hello")

	assert.Equal(t, []string{"assistant:hi", "user:hello"}, seen)

	snapshot := c.Utterances()
	snapshot[0].Text = "changed"
	assert.Equal(t, "hi", c.Utterances()[0].Text)
}

func TestSession_StatusHookFiresOnChange(t *testing.T) {
	s := NewSession("abc")

	var changes []Status
	s.OnStatus(func(st Status) { changes = append(changes, st) })

	s.SetStatus(StatusListening)
	s.SetStatus(StatusListening)
	s.SetStatus(StatusProcessing)
	s.SetStatus(StatusIdle)

	assert.Equal(t, []Status{StatusListening, StatusProcessing, StatusIdle}, changes)
}
