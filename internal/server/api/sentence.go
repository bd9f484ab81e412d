// Package api provides HTTP API handlers for the Mudra sign translation system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/session"
	"github.com/ayusman/mudra/internal/sign"
	"github.com/ayusman/mudra/internal/store"
)

// Session is the conversation surface the sentence API exposes.
type Session interface {
	Tokens() []sign.Token
	Snapshot() string
	LastDetected() sign.Token
	CooldownRemaining(now time.Time) time.Duration
	Clear()
	Save(now time.Time) (*store.HistoryEntry, error)
}

// SentenceHandler handles HTTP requests for the current sentence.
type SentenceHandler struct {
	session Session
}

// NewSentenceHandler creates a new SentenceHandler for the given session.
func NewSentenceHandler(s Session) *SentenceHandler {
	return &SentenceHandler{session: s}
}

type sentenceResponse struct {
	Tokens       []string `json:"tokens"`
	Text         string   `json:"text"`
	LastDetected string   `json:"last_detected"`
	CooldownMS   int64    `json:"cooldown_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// ServeHTTP implements the http.Handler interface.
// GET returns the sentence snapshot; DELETE clears the sentence.
func (h *SentenceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.snapshot(w, r)
	case http.MethodDelete:
		h.clear(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// snapshot handles GET /api/sentence.
func (h *SentenceHandler) snapshot(w http.ResponseWriter, r *http.Request) {
	tokens := h.session.Tokens()
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		words = append(words, string(token))
	}

	writeJSON(w, http.StatusOK, sentenceResponse{
		Tokens:       words,
		Text:         h.session.Snapshot(),
		LastDetected: string(h.session.LastDetected()),
		CooldownMS:   h.session.CooldownRemaining(time.Now()).Milliseconds(),
	})
}

// clear handles DELETE /api/sentence.
func (h *SentenceHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.session.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// SaveHandler handles POST /api/sentence/save, moving the current
// sentence into the conversation history.
type SaveHandler struct {
	session Session
}

// NewSaveHandler creates a new SaveHandler for the given session.
func NewSaveHandler(s Session) *SaveHandler {
	return &SaveHandler{session: s}
}

type historyEntryResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Mode      string `json:"mode"`
	CreatedAt string `json:"created_at"`
}

func toHistoryResponse(entry *store.HistoryEntry) historyEntryResponse {
	return historyEntryResponse{
		ID:        entry.ID,
		Text:      entry.Text,
		Mode:      entry.Mode,
		CreatedAt: entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *SaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entry, err := h.session.Save(time.Now())
	if err != nil {
		if errors.Is(err, session.ErrEmptySentence) {
			writeError(w, http.StatusBadRequest, "Sentence is empty")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save sentence")
		return
	}

	writeJSON(w, http.StatusCreated, toHistoryResponse(entry))
}
