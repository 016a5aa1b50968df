package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// ErrorResponse is the error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the response for GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	database := "up"
	if err := s.db.PingContext(r.Context()); err != nil {
		s.logger.Error("database ping failed", "error", err)
		status = "degraded"
		database = "down"
	}

	s.sendJSON(w, http.StatusOK, HealthResponse{
		Status:   status,
		Version:  s.version,
		Uptime:   time.Since(s.startTime).Round(time.Second).String(),
		Database: database,
	})
}

// parseID parses the {id} path parameter. Non-numeric ids are a request
// error, rejected before any service logic runs.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// sendError sends an error response
func (s *Server) sendError(w http.ResponseWriter, status int, message string) {
	s.sendJSON(w, status, ErrorResponse{Error: message})
}

// sendNotFound sends an empty-body 404, the contract for lookups of
// absent or hidden content.
func (s *Server) sendNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}
