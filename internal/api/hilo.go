package api

import (
	"net/http"

	"github.com/arcadelab/parlor/internal/games"
	"github.com/arcadelab/parlor/internal/leaderboard"
)

// handleHiLoRound starts the next higher/lower round for the player's
// session. When the error budget is spent it finalizes instead: the response
// carries the final score and the current top scores, and the session is
// reset for the next game.
func (s *Server) handleHiLoRound(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)
	state := s.sessions.HiLo(sid)

	if state.Over() {
		final, reset := s.hilo.Finalize(state)
		s.sessions.PutHiLo(sid, reset)

		top, err := s.hiloBoard.TopN(leaderboard.DefaultTopN)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}

		s.writeJSON(w, http.StatusOK, HiLoRoundResponse{
			Points:          reset.Points,
			ErrorsRemaining: reset.ErrorsRemaining,
			GameOver:        true,
			FinalScore:      &final,
			TopScores:       top,
		})
		return
	}

	state, challenge, err := s.hilo.StartRound(state)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.sessions.PutHiLo(sid, state)

	s.writeJSON(w, http.StatusOK, HiLoRoundResponse{
		Points:          state.Points,
		ErrorsRemaining: state.ErrorsRemaining,
		NumberFirst:     challenge.First,
		NumberSecond:    challenge.Second,
	})
}

// handleHiLoGuess evaluates a guess against the round the client echoes
// back.
func (s *Server) handleHiLoGuess(w http.ResponseWriter, r *http.Request) {
	var req HiLoGuessRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeInvalidInput(w, r, "invalid request body")
		return
	}

	guess, err := games.ParseGuess(req.Guess)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	sid := s.sessionID(w, r)
	state := s.sessions.HiLo(sid)

	challenge := games.HiLoChallenge{First: req.NumberFirst, Second: req.NumberSecond}
	state, outcome, err := s.hilo.SubmitGuess(state, challenge, guess)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.sessions.PutHiLo(sid, state)

	s.writeJSON(w, http.StatusOK, HiLoGuessResponse{
		Result:          string(outcome),
		NumberFirst:     challenge.First,
		NumberSecond:    challenge.Second,
		Points:          state.Points,
		ErrorsRemaining: state.ErrorsRemaining,
	})
}
