package dialogue

import (
	"context"
	"errors"
	"sync"
	"time"

	"SonicSavor/pkg/log"
	"SonicSavor/pkg/nlp"
)

var errNoMoreInput = errors.New("no speech detected")

type heard struct {
	text string
	err  error
}

// scriptedSpeech plays back a fixed list of recognition results and records
// everything spoken. When the script runs out, Listen fails.
type scriptedSpeech struct {
	mu     sync.Mutex
	script []heard
	spoken []string
}

func newScriptedSpeech(answers ...string) *scriptedSpeech {
	s := &scriptedSpeech{}
	for _, a := range answers {
		s.script = append(s.script, heard{text: a})
	}
	return s
}

func (s *scriptedSpeech) fail(err error) *scriptedSpeech {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = append(s.script, heard{err: err})
	return s
}

func (s *scriptedSpeech) Speak(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = append(s.spoken, text)
	return nil
}

func (s *scriptedSpeech) Listen(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.script) == 0 {
		return "", errNoMoreInput
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next.text, next.err
}

func (s *scriptedSpeech) Spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.spoken...)
}

func (s *scriptedSpeech) LastSpoken() string {
	spoken := s.Spoken()
	if len(spoken) == 0 {
		return ""
	}
	return spoken[len(spoken)-1]
}

// blockingSpeech never recognises anything until ctx ends.
type blockingSpeech struct {
	started chan struct{}
}

func (b *blockingSpeech) Speak(_ context.Context, _ string) error { return nil }

func (b *blockingSpeech) Listen(ctx context.Context) (string, error) {
	if b.started != nil {
		select {
		case b.started <- struct{}{}:
		default:
		}
	}
	<-ctx.Done()
	return "", ctx.Err()
}

type placedOrder struct {
	name, phone string
	items       []string
}

type placedReservation struct {
	name, timeSlot string
	partySize      int
}

type cancellation struct {
	orderNumber, customerName string
}

type fakeBackend struct {
	mu sync.Mutex

	orderID  string
	orderErr error
	orders   []placedOrder

	menuAnswer string
	menuErr    error
	questions  []string

	reservationID  string
	reservationErr error
	reservations   []placedReservation

	issueAnswer string
	issueErr    error
	issues      []string

	cancelMessage string
	cancelErr     error
	cancellations []cancellation
}

func (f *fakeBackend) PlaceOrder(_ context.Context, name, phone string, items []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, placedOrder{name: name, phone: phone, items: append([]string{}, items...)})
	return f.orderID, f.orderErr
}

func (f *fakeBackend) MenuInquiry(_ context.Context, question string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions = append(f.questions, question)
	return f.menuAnswer, f.menuErr
}

func (f *fakeBackend) CreateReservation(_ context.Context, name, timeSlot string, partySize int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reservations = append(f.reservations, placedReservation{name: name, timeSlot: timeSlot, partySize: partySize})
	return f.reservationID, f.reservationErr
}

func (f *fakeBackend) ResolveIssue(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issues = append(f.issues, text)
	return f.issueAnswer, f.issueErr
}

func (f *fakeBackend) CancelOrder(_ context.Context, orderNumber, customerName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancellations = append(f.cancellations, cancellation{orderNumber: orderNumber, customerName: customerName})
	return f.cancelMessage, f.cancelErr
}

func newTestMachine(speech Speech, backend Backend) *Machine {
	return New(log.NewDiscardLogger(), speech, backend, nlp.NewProcessor(), Config{
		SpeakTimeout:   time.Second,
		CaptureTimeout: time.Second,
		RemoteTimeout:  time.Second,
	})
}
