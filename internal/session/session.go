// Package session owns the per-conversation recognition state: the
// stability window, the emission cooldown, and the accumulated sentence.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/feature"
	"github.com/ayusman/mudra/internal/sign"
	"github.com/ayusman/mudra/internal/store"
)

// ErrEmptySentence is returned when saving a sentence with no tokens.
var ErrEmptySentence = errors.New("sentence is empty")

// Event is a confirmed sign emission.
type Event struct {
	Token     sign.Token `json:"token"`
	Timestamp time.Time  `json:"timestamp"`
}

// Config holds configuration options for a Session.
type Config struct {
	// Store persists saved sentences. Optional; Save fails without it.
	Store *store.Store

	// Features holds the geometric extraction thresholds. The zero
	// value selects feature.DefaultConfig, like the fields below.
	Features feature.Config

	// BufferSize is the stability window length in frames.
	BufferSize int

	// Consensus is the vote count required to confirm a token.
	Consensus int

	// Cooldown is the refractory period between emissions.
	Cooldown time.Duration
}

// Session converts per-tick landmark observations into confirmed sign
// events and accumulates them into a sentence. All mutable state lives
// on the session; frame delivery is expected to be serialized, and the
// mutex exists so HTTP handlers can safely read snapshots while the
// pipeline runs.
type Session struct {
	extractor  *feature.Extractor
	classifier *sign.Classifier
	buffer     *sign.Buffer
	gate       *sign.Gate
	store      *store.Store

	mu       sync.RWMutex
	sentence []sign.Token
	last     sign.Token

	// OnEvent, when set, is invoked synchronously for every confirmed
	// emission. Set it before the first Process call.
	OnEvent func(Event)
}

// New creates a Session with the given configuration.
func New(config Config) *Session {
	features := config.Features
	if features == (feature.Config{}) {
		features = feature.DefaultConfig()
	}
	bufferSize := config.BufferSize
	if bufferSize <= 0 {
		bufferSize = sign.DefaultBufferSize
	}
	consensus := config.Consensus
	if consensus <= 0 {
		consensus = sign.DefaultConsensus
	}
	cooldown := config.Cooldown
	if cooldown <= 0 {
		cooldown = sign.DefaultCooldown
	}

	return &Session{
		extractor:  feature.NewExtractor(features),
		classifier: sign.NewClassifier(),
		buffer:     sign.NewBuffer(bufferSize, consensus),
		gate:       sign.NewGate(cooldown),
		store:      config.Store,
	}
}

// Process runs one tick of the pipeline and returns the confirmed event,
// if any. Invalid hands are dropped first; a tick with no valid hand
// skips classification entirely and leaves the stability window and the
// cooldown state untouched. A tick inside the cooldown window is
// skipped whole, buffer update included.
func (s *Session) Process(hands []detector.HandLandmarks, now time.Time) *Event {
	valid := hands[:0:0]
	for i := range hands {
		if hands[i].Valid() {
			valid = append(valid, hands[i])
		}
	}

	if len(valid) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.Ready(now) {
		return nil
	}

	bundle := s.extractor.ExtractBundle(valid)
	candidate := s.classifier.Classify(bundle)

	token, promoted := s.buffer.Push(candidate)
	if !promoted {
		return nil
	}

	s.gate.Mark(now)
	s.sentence = append(s.sentence, token)
	s.last = token

	event := Event{Token: token, Timestamp: now}
	if s.OnEvent != nil {
		s.OnEvent(event)
	}

	return &event
}

// Tokens returns a copy of the accumulated sentence tokens.
func (s *Session) Tokens() []sign.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens := make([]sign.Token, len(s.sentence))
	copy(tokens, s.sentence)
	return tokens
}

// Snapshot returns the space-joined sentence text.
func (s *Session) Snapshot() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joined()
}

func (s *Session) joined() string {
	words := make([]string, len(s.sentence))
	for i, token := range s.sentence {
		words[i] = string(token)
	}
	return strings.Join(words, " ")
}

// LastDetected returns the most recently confirmed token.
func (s *Session) LastDetected() sign.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// CooldownRemaining returns how long until the next emission is allowed.
func (s *Session) CooldownRemaining(now time.Time) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gate.Remaining(now)
}

// Clear drops the sentence and resets the stability window and the
// last-detected token. The coupling is intentional: leftover window
// votes must not repopulate a sentence the user just cleared.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.sentence = s.sentence[:0]
	s.last = sign.TokenNone
	s.buffer.Reset()
}

// Save moves the current sentence into a persisted history entry and
// resets the session core. Saving an empty sentence is an error.
func (s *Session) Save(now time.Time) (*store.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sentence) == 0 {
		return nil, ErrEmptySentence
	}
	if s.store == nil {
		return nil, errors.New("no store configured")
	}

	entry := &store.HistoryEntry{
		Text:      s.joined(),
		CreatedAt: now,
	}
	if err := s.store.History().Create(entry); err != nil {
		return nil, err
	}

	s.reset()
	return entry, nil
}
