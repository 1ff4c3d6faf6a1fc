package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/arcadelab/parlor/internal/games"
	"github.com/arcadelab/parlor/internal/leaderboard"
	"github.com/arcadelab/parlor/internal/questions"
)

// writeDomainError maps a domain error onto the client-facing error taxonomy
// and writes the structured response.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, errType := classify(err)

	requestID := middleware.GetReqID(r.Context())
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	} else {
		s.logger.Warn("request rejected",
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}

	s.writeJSON(w, status, APIError{
		Type:      errType,
		Message:   err.Error(),
		RequestID: requestID,
	})
}

// classify picks the HTTP status and error type for a domain error.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, games.ErrInvalidInput), errors.Is(err, leaderboard.ErrEmptyName):
		return http.StatusBadRequest, ErrTypeInvalidInput
	case errors.Is(err, games.ErrGameOver):
		return http.StatusConflict, ErrTypePrecondition
	case errors.Is(err, questions.ErrEmptyBank):
		return http.StatusInternalServerError, ErrTypePrecondition
	case errors.Is(err, questions.ErrExhausted):
		return http.StatusInternalServerError, ErrTypeExhausted
	case errors.Is(err, questions.ErrNotFound):
		return http.StatusNotFound, ErrTypeNotFound
	default:
		return http.StatusInternalServerError, ErrTypeInternal
	}
}

// writeInvalidInput rejects a malformed request before any state is touched.
func (s *Server) writeInvalidInput(w http.ResponseWriter, r *http.Request, message string) {
	s.writeJSON(w, http.StatusBadRequest, APIError{
		Type:      ErrTypeInvalidInput,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// recoverer turns panics into structured internal errors instead of dropped
// connections.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				requestID := middleware.GetReqID(r.Context())
				s.logger.Error("panic recovered",
					zap.String("request_id", requestID),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rvr))
				s.writeJSON(w, http.StatusInternalServerError, APIError{
					Type:      ErrTypeInternal,
					Message:   "internal server error",
					RequestID: requestID,
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
