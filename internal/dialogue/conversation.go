package dialogue

import (
	"sync"
	"time"
)

type Speaker string

const (
	SpeakerAssistant Speaker = "assistant"
	SpeakerUser      Speaker = "user"
)

type Utterance struct {
	Seq       int       `json:"seq"`
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the append-only transcript of a session. It is read by
// observers only; the machine never branches on history.
type Conversation struct {
	mu        sync.RWMutex
	entries   []Utterance
	observers []func(Utterance)
	now       func() time.Time
}

func NewConversation() *Conversation {
	return &Conversation{now: time.Now}
}

func (c *Conversation) Append(speaker Speaker, text string) Utterance {
	c.mu.Lock()
	u := Utterance{
		Seq:       len(c.entries) + 1,
		Speaker:   speaker,
		Text:      text,
		Timestamp: c.now(),
	}
	c.entries = append(c.entries, u)
	observers := append([]func(Utterance){}, c.observers...)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(u)
	}
	return u
}

// Utterances returns a copy of the transcript in append order.
func (c *Conversation) Utterances() []Utterance {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Utterance, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Observe registers fn to be called after every append, in append order.
func (c *Conversation) Observe(fn func(Utterance)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}
