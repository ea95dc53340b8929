// Package httpapi exposes the list view and its narration cards over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/backend"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/listview"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/nguyentantai21042004/wazigov-narrator/internal/voice"
)

// Server holds the handlers' dependencies
type Server struct {
	view    listview.View
	catalog voice.Catalog
	client  backend.Client
	logger  logger.Logger
}

// New creates a Server over view
func New(view listview.View, catalog voice.Catalog, client backend.Client, log logger.Logger) *Server {
	return &Server{
		view:    view,
		catalog: catalog,
		client:  client,
		logger:  log,
	}
}

// Routes configures the HTTP routes
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/summaries", s.summariesHandler).Methods(http.MethodGet)
	r.HandleFunc("/summaries/women", s.womenHandler).Methods(http.MethodGet)
	r.HandleFunc("/voices", s.voicesHandler).Methods(http.MethodGet)
	r.HandleFunc("/selection", s.selectionHandler).Methods(http.MethodPut)

	// Card routes stay on the root router so a method mismatch answers 405
	r.HandleFunc("/cards/{id:[0-9]+}/play", s.playHandler).Methods(http.MethodPost)
	r.HandleFunc("/cards/{id:[0-9]+}/stop", s.stopHandler).Methods(http.MethodPost)
	r.HandleFunc("/cards/{id:[0-9]+}/mode", s.modeHandler).Methods(http.MethodPut)
	r.HandleFunc("/cards/{id:[0-9]+}/language", s.languageHandler).Methods(http.MethodPut)

	return r
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.logger.Debug(r.Context(), "%s %s %d %v", r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
