package dialogue

import (
	"sync"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusListening  Status = "listening"
	StatusProcessing Status = "processing"
)

// OrderDraft accumulates an order across turns. Items keep the order in
// which they were spoken.
type OrderDraft struct {
	CustomerName string
	PhoneNumber  string
	Items        []string
}

func (d *OrderDraft) AddItem(item string) {
	d.Items = append(d.Items, item)
}

// Complete reports whether the draft can be submitted.
func (d *OrderDraft) Complete() bool {
	return d.CustomerName != "" && d.PhoneNumber != "" && len(d.Items) > 0
}

func (d *OrderDraft) Reset() {
	*d = OrderDraft{}
}

type ReservationDraft struct {
	CustomerName string
	PartySize    int
	TimeSlot     string
}

func (d *ReservationDraft) Reset() {
	*d = ReservationDraft{}
}

// IssueDraft holds what the caller said while reporting an issue.
type IssueDraft struct {
	Text          string
	OrderNumber   string
	CustomerName  string
	UpdateDetails string
}

func (d *IssueDraft) Reset() {
	*d = IssueDraft{}
}

// Session is the mutable context threaded through every transition.
type Session struct {
	ID          string
	Order       OrderDraft
	Reservation ReservationDraft
	Issue       IssueDraft

	mu     sync.RWMutex
	status Status
	onStat func(Status)
}

func NewSession(id string) *Session {
	return &Session{ID: id, status: StatusIdle}
}

func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Session) SetStatus(status Status) {
	s.mu.Lock()
	changed := s.status != status
	s.status = status
	hook := s.onStat
	s.mu.Unlock()

	if changed && hook != nil {
		hook(status)
	}
}

// OnStatus registers a callback fired whenever the status changes.
func (s *Session) OnStatus(fn func(Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onStat = fn
}

// ResetDrafts drops every in-progress draft.
func (s *Session) ResetDrafts() {
	s.Order.Reset()
	s.Reservation.Reset()
	s.Issue.Reset()
}
