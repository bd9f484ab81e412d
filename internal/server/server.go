package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	Store   *store.Store
	Session api.Session
	Events  *EventsHandler
}

// Server represents the HTTP server for the Mudra application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Register sentence endpoints if a Session is configured
	if s.config.Session != nil {
		s.mux.Handle("/api/sentence", api.NewSentenceHandler(s.config.Session))
		s.mux.Handle("/api/sentence/save", api.NewSaveHandler(s.config.Session))
	}

	// Register vocabulary and history endpoints if a Store is configured
	if s.config.Store != nil {
		signsHandler := api.NewSignsHandler(s.config.Store)
		s.mux.Handle("/api/signs", signsHandler)
		s.mux.Handle("/api/signs/", signsHandler)

		historyHandler := api.NewHistoryHandler(s.config.Store)
		s.mux.Handle("/api/history", historyHandler)
		s.mux.Handle("/api/history/", historyHandler)
	}

	// Register the sign event stream if configured
	if s.config.Events != nil {
		s.mux.Handle("/api/events", s.config.Events)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
