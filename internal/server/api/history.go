package api

import (
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// HistoryHandler handles HTTP requests for the conversation history.
type HistoryHandler struct {
	store *store.Store
}

// NewHistoryHandler creates a new HistoryHandler with the given store.
func NewHistoryHandler(s *store.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

type listHistoryResponse struct {
	Entries []historyEntryResponse `json:"entries"`
}

// ServeHTTP implements the http.Handler interface.
// Expected paths: /api/history and /api/history/export.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/export") {
		h.export(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.clear(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list handles GET /api/history and returns all saved sentences.
func (h *HistoryHandler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.History().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list history")
		return
	}

	response := listHistoryResponse{
		Entries: make([]historyEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, toHistoryResponse(entry))
	}

	writeJSON(w, http.StatusOK, response)
}

// clear handles DELETE /api/history and removes all saved sentences.
func (h *HistoryHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.History().Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clear history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// export handles GET /api/history/export and returns the conversation
// as a downloadable plain-text transcript.
func (h *HistoryHandler) export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	transcript, err := h.store.History().Export()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export history")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="conversation.txt"`)
	w.Write([]byte(transcript))
}
