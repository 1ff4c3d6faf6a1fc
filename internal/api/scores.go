package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/arcadelab/parlor/internal/leaderboard"
)

// maxTopN caps how many records one listing request can ask for.
const maxTopN = 100

// handleAddScore records a finished-game score for the named player. Names
// need not be unique and negative scores are allowed.
func (s *Server) handleAddScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeInvalidInput(w, r, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		s.writeInvalidInput(w, r, "name is required")
		return
	}
	if req.Score == nil {
		s.writeInvalidInput(w, r, "score is required")
		return
	}
	mode, err := leaderboard.ParseMode(req.Game)
	if err != nil {
		s.writeInvalidInput(w, r, err.Error())
		return
	}

	if err := s.board(mode).Record(req.Name, *req.Score); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, ScoreResponse{Message: "Score added successfully!"})
}

// handleTopScores returns the ordered top scores for one game mode.
func (s *Server) handleTopScores(w http.ResponseWriter, r *http.Request) {
	game := r.URL.Query().Get("game")
	if game == "" {
		game = string(leaderboard.ModeHiLo)
	}
	mode, err := leaderboard.ParseMode(game)
	if err != nil {
		s.writeInvalidInput(w, r, err.Error())
		return
	}

	limit := leaderboard.DefaultTopN
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeInvalidInput(w, r, "limit must be a positive integer")
			return
		}
		if n > maxTopN {
			n = maxTopN
		}
		limit = n
	}

	records, err := s.board(mode).TopN(limit)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if records == nil {
		records = []leaderboard.Record{}
	}

	s.writeJSON(w, http.StatusOK, ScoresResponse{Game: string(mode), Scores: records})
}
