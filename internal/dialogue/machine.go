package dialogue

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	contextPkg "SonicSavor/pkg/context"
	"SonicSavor/pkg/nlp"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrSessionActive = errors.New("dialogue session already running")

type Config struct {
	SpeakTimeout   time.Duration
	CaptureTimeout time.Duration
	RemoteTimeout  time.Duration
}

func DefaultConfig() Config {
	return Config{
		SpeakTimeout:   30 * time.Second,
		CaptureTimeout: 15 * time.Second,
		RemoteTimeout:  20 * time.Second,
	}
}

type stepFunc func(ctx context.Context) State

// Machine drives one dialogue session. Each Step runs a single state and
// returns the next one; Run loops until the session goes idle.
type Machine struct {
	cfg          Config
	log          *logrus.Logger
	backend      Backend
	nlp          nlp.INLPProcessor
	session      *Session
	conversation *Conversation
	turn         *TurnExecutor
	steps        map[State]stepFunc
	running      atomic.Bool
}

func New(log *logrus.Logger, speech Speech, backend Backend, processor nlp.INLPProcessor, cfg Config) *Machine {
	session := NewSession(uuid.NewString())
	conversation := NewConversation()

	m := &Machine{
		cfg:          cfg,
		log:          log,
		backend:      backend,
		nlp:          processor,
		session:      session,
		conversation: conversation,
		turn:         NewTurnExecutor(speech, conversation, session, log, cfg.SpeakTimeout, cfg.CaptureTimeout),
	}

	m.steps = map[State]stepFunc{
		StateWelcome:  m.welcome,
		StateMainMenu: m.mainMenu,

		StateOrderName:     m.orderName,
		StateOrderPhone:    m.orderPhone,
		StateOrderItem:     m.orderItem(msgOrderItem),
		StateOrderMoreItem: m.orderItem(msgOrderMoreItem),
		StateOrderAnother:  m.orderAnother,
		StateOrderSubmit:   m.orderSubmit,

		StateMenuAsk: m.menuAsk,

		StateReservationName:   m.reservationName,
		StateReservationSize:   m.reservationSize,
		StateReservationTime:   m.reservationTime,
		StateReservationSubmit: m.reservationSubmit,

		StateIssueAsk:              m.issueAsk,
		StateIssueRoute:            m.issueRoute,
		StateOrderIssueNumber:      m.orderIssueNumber,
		StateOrderIssueVerify:      m.orderIssueVerify,
		StateOrderIssueUpdate:      m.orderIssueUpdate,
		StateReservationCancelInfo: m.reservationCancelInfo,
		StateGeneralIssueSubmit:    m.generalIssueSubmit,
	}
	for state, c := range closings {
		m.steps[state] = m.closing(c)
	}

	return m
}

func (m *Machine) Session() *Session {
	return m.session
}

func (m *Machine) Conversation() *Conversation {
	return m.conversation
}

// Run starts the dialogue at the welcome prompt and blocks until it ends or
// ctx is cancelled. Only one Run may be active per machine.
func (m *Machine) Run(ctx context.Context) error {
	if !m.running.CompareAndSwap(false, true) {
		return ErrSessionActive
	}
	defer m.running.Store(false)

	sessionsTotal.Inc()
	ctx = contextPkg.WithSessionID(ctx, m.session.ID)

	m.log.WithFields(logrus.Fields{
		"session_id": m.session.ID,
	}).Info("Dialogue session started")

	state := StateWelcome
	for !state.Terminal() {
		if err := ctx.Err(); err != nil {
			m.session.SetStatus(StatusIdle)
			return err
		}
		state = m.Step(ctx, state)
	}

	m.log.WithFields(logrus.Fields{
		"session_id": m.session.ID,
		"utterances": m.conversation.Len(),
	}).Info("Dialogue session ended")

	return nil
}

// Step runs state s and returns its successor.
func (m *Machine) Step(ctx context.Context, s State) State {
	step, ok := m.steps[s]
	if !ok {
		m.session.SetStatus(StatusIdle)
		return StateIdle
	}

	turnsTotal.WithLabelValues(s.String()).Inc()
	next := step(ctx)

	m.log.WithFields(logrus.Fields{
		"session_id": m.session.ID,
		"from":       s.String(),
		"to":         next.String(),
	}).Debug("Dialogue transition")

	return next
}

// abort speaks msg on a best-effort basis and ends the session.
func (m *Machine) abort(ctx context.Context, msg string, cause error) State {
	if cause != nil {
		m.log.WithFields(logrus.Fields{
			"session_id": m.session.ID,
			"error":      cause.Error(),
		}).Warn(msg)
	}

	_ = m.turn.Prompt(ctx, msg)
	return m.finish()
}

// end speaks msg and ends the session.
func (m *Machine) end(ctx context.Context, msg string) State {
	_ = m.turn.Prompt(ctx, msg)
	return m.finish()
}

func (m *Machine) finish() State {
	m.session.SetStatus(StatusIdle)
	return StateIdle
}

func (m *Machine) welcome(ctx context.Context) State {
	m.session.SetStatus(StatusListening)
	if err := m.turn.Prompt(ctx, msgWelcome); err != nil {
		return m.abort(ctx, msgMainMenuError, err)
	}
	return StateMainMenu
}

// mainMenu re-prompts without limit until a choice is recognised.
func (m *Machine) mainMenu(ctx context.Context) State {
	text, err := m.turn.Capture(ctx)
	if err != nil {
		return m.abort(ctx, msgMainMenuError, err)
	}

	switch m.nlp.ClassifyMenuChoice(text).Intent {
	case nlp.IntentOrder:
		return StateOrderName
	case nlp.IntentMenu:
		return StateMenuAsk
	case nlp.IntentReservation:
		return StateReservationName
	case nlp.IntentIssue:
		return StateIssueAsk
	}

	if err := m.turn.Prompt(ctx, msgNotUnderstood); err != nil {
		return m.abort(ctx, msgMainMenuError, err)
	}
	return StateMainMenu
}
