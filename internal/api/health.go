package api

import (
	"net/http"
	"time"
)

// Version is the server version reported by the health endpoint.
const Version = "1.0.0"

// handleHealth reports liveness plus basic uptime info.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Uptime:    time.Since(s.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
