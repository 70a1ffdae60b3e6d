package chat

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultReplyDelay = 1500 * time.Millisecond

type EventType string

const (
	EventMessage EventType = "message"
	EventTyping  EventType = "typing"
	EventMonth   EventType = "month"
)

type Event struct {
	Type    EventType `json:"type"`
	Message *Message  `json:"message,omitempty"`
	Typing  bool      `json:"typing"`
	Month   Month     `json:"month"`
}

// Listener is called with the session lock held; it must not block or call
// back into the session.
type Listener func(Event)

type Option func(*Session)

func WithReplyDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listener = l
	}
}

// Session is one game-screen conversation. At most one narrator reply is
// pending at a time; a new player message or Close cancels it.
type Session struct {
	narrator Narrator
	delay    time.Duration
	now      func() time.Time
	logger   *zap.Logger
	listener Listener

	mu       sync.Mutex
	messages []Message
	month    Month
	stats    Stats
	typing   bool
	seq      int
	gen      uint64
	cancel   context.CancelFunc
	closed   bool

	wg sync.WaitGroup
}

func NewSession(narrator Narrator, opts ...Option) *Session {
	if narrator == nil {
		narrator = PlaceholderNarrator{}
	}
	s := &Session{
		narrator: narrator,
		delay:    DefaultReplyDelay,
		now:      time.Now,
		logger:   zap.NewNop(),
		month:    StartMonth,
		stats:    DefaultStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, text := range welcomeMessages {
		s.messages = append(s.messages, s.newMessage(KindSystem, text))
	}
	return s
}

type Snapshot struct {
	Messages []Message `json:"messages"`
	Month    Month     `json:"month"`
	Stats    Stats     `json:"stats"`
	Typing   bool      `json:"typing"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	return Snapshot{Messages: msgs, Month: s.month, Stats: s.stats, Typing: s.typing}
}

func (s *Session) Messages() []Message {
	return s.Snapshot().Messages
}

// Send appends a player message and schedules the narrator reply. Blank
// input and sends after Close are ignored.
func (s *Session) Send(text string) (Message, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Message{}, false
	}

	msg := s.appendLocked(KindPlayer, text)
	s.cancelPendingLocked()

	ctx, cancel := context.WithCancel(context.Background())
	s.gen++
	s.cancel = cancel
	s.setTypingLocked(true)

	turn := Turn{Action: text, Stats: s.stats, Month: s.month}
	s.wg.Add(1)
	go s.reply(ctx, s.gen, turn)

	return msg, true
}

// AdvanceMonth moves the calendar forward and announces the new month.
func (s *Session) AdvanceMonth() (Month, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.month, false
	}

	s.month = s.month.Next()
	s.emitLocked(Event{Type: EventMonth, Month: s.month, Typing: s.typing})
	s.appendLocked(KindSystem, monthChangeText(s.month))
	return s.month, true
}

// Close cancels any pending reply and waits for it to unwind.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancelPendingLocked()
	s.typing = false
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Session) reply(ctx context.Context, gen uint64, turn Turn) {
	defer s.wg.Done()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	text, err := s.narrator.Respond(ctx, turn)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.gen != gen || ctx.Err() != nil {
		return
	}
	s.cancel = nil
	s.setTypingLocked(false)

	if err != nil {
		s.logger.Warn("narrator failed", zap.Error(err), zap.String("month", turn.Month.String()))
		return
	}
	s.appendLocked(KindSystem, text)
}

func (s *Session) cancelPendingLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) setTypingLocked(typing bool) {
	if s.typing == typing {
		return
	}
	s.typing = typing
	s.emitLocked(Event{Type: EventTyping, Typing: typing, Month: s.month})
}

func (s *Session) appendLocked(kind Kind, text string) Message {
	msg := s.newMessage(kind, text)
	s.messages = append(s.messages, msg)
	s.emitLocked(Event{Type: EventMessage, Message: &msg, Typing: s.typing, Month: s.month})
	return msg
}

func (s *Session) newMessage(kind Kind, text string) Message {
	s.seq++
	return Message{ID: strconv.Itoa(s.seq), Type: kind, Content: text, Timestamp: s.now()}
}

func (s *Session) emitLocked(evt Event) {
	if s.listener != nil {
		s.listener(evt)
	}
}
