package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// SignsHandler handles HTTP requests for the sign vocabulary.
type SignsHandler struct {
	store *store.Store
}

// NewSignsHandler creates a new SignsHandler with the given store.
func NewSignsHandler(s *store.Store) *SignsHandler {
	return &SignsHandler{store: s}
}

type createSignRequest struct {
	Word        string `json:"word"`
	Hands       string `json:"hands"`
	Description string `json:"description"`
}

type signResponse struct {
	ID          string `json:"id"`
	Word        string `json:"word"`
	Hands       string `json:"hands"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type listSignsResponse struct {
	Signs []signResponse `json:"signs"`
}

func toSignResponse(s *store.Sign) signResponse {
	return signResponse{
		ID:          s.ID,
		Word:        s.Word,
		Hands:       s.Hands,
		Description: s.Description,
		CreatedAt:   s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ServeHTTP implements the http.Handler interface and routes requests.
// Expected paths: /api/signs or /api/signs/{word}.
func (h *SignsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/signs")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/signs
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/signs/{word}
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, path)
	case http.MethodDelete:
		h.delete(w, r, path)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list handles GET /api/signs and returns the full vocabulary.
func (h *SignsHandler) list(w http.ResponseWriter, r *http.Request) {
	signs, err := h.store.Signs().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list signs")
		return
	}

	response := listSignsResponse{
		Signs: make([]signResponse, 0, len(signs)),
	}
	for _, s := range signs {
		response.Signs = append(response.Signs, toSignResponse(s))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/signs/{word} and returns one vocabulary entry.
// This is the text-to-sign lookup: the word resolves to its metadata.
func (h *SignsHandler) get(w http.ResponseWriter, r *http.Request, word string) {
	s, err := h.store.Signs().GetByWord(strings.ToUpper(word))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Sign not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get sign")
		return
	}

	writeJSON(w, http.StatusOK, toSignResponse(s))
}

// delete handles DELETE /api/signs/{word} and removes a vocabulary entry.
func (h *SignsHandler) delete(w http.ResponseWriter, r *http.Request, word string) {
	s, err := h.store.Signs().GetByWord(strings.ToUpper(word))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Sign not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get sign")
		return
	}

	if err := h.store.Signs().Delete(s.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete sign")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// create handles POST /api/signs and adds a vocabulary entry.
func (h *SignsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Word == "" {
		writeError(w, http.StatusBadRequest, "Word is required")
		return
	}

	hands := req.Hands
	if hands == "" {
		hands = "single"
	}
	if hands != "single" && hands != "double" {
		writeError(w, http.StatusBadRequest, "Invalid hands value")
		return
	}

	s := &store.Sign{
		Word:        strings.ToUpper(req.Word),
		Hands:       hands,
		Description: req.Description,
	}

	if err := h.store.Signs().Create(s); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create sign")
		return
	}

	writeJSON(w, http.StatusCreated, toSignResponse(s))
}
