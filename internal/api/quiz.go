package api

import (
	"net/http"

	"github.com/arcadelab/parlor/internal/leaderboard"
	"github.com/arcadelab/parlor/internal/questions"
)

// handleQuizRound serves the next trivia question for the player's session.
// A fresh game reseeds the question bank; ids are reassigned, so any
// in-flight challenge of another player goes stale. A terminal game is
// finalized instead, mirroring the hilo flow.
func (s *Server) handleQuizRound(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)
	state := s.sessions.Quiz(sid)

	if state.Over() {
		final, reset := s.quiz.Finalize(state)
		s.sessions.PutQuiz(sid, reset)

		top, err := s.quizBoard.TopN(leaderboard.DefaultTopN)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}

		s.writeJSON(w, http.StatusOK, QuizRoundResponse{
			Points:          reset.Points,
			ErrorsRemaining: reset.ErrorsRemaining,
			GameOver:        true,
			FinalScore:      &final,
			TopScores:       top,
		})
		return
	}

	if state.Fresh() {
		if err := s.bank.Reseed(questions.DefaultCatalog()); err != nil {
			s.writeDomainError(w, r, err)
			return
		}
	}

	state, challenge, err := s.quiz.StartRound(state, s.bank)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.sessions.PutQuiz(sid, state)

	s.writeJSON(w, http.StatusOK, QuizRoundResponse{
		Points:          state.Points,
		ErrorsRemaining: state.ErrorsRemaining,
		QuestionID:      challenge.ID,
		Question:        challenge.Prompt,
		RoundsPlayed:    len(state.AskedIDs),
	})
}

// handleQuizAnswer evaluates an answer against the stored answer of the
// submitted question id.
func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var req QuizAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeInvalidInput(w, r, "invalid request body")
		return
	}

	sid := s.sessionID(w, r)
	state := s.sessions.Quiz(sid)

	state, outcome, err := s.quiz.SubmitAnswer(state, s.bank, req.QuestionID, req.Answer)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.sessions.PutQuiz(sid, state)

	s.writeJSON(w, http.StatusOK, QuizAnswerResponse{
		Result:          string(outcome),
		Points:          state.Points,
		ErrorsRemaining: state.ErrorsRemaining,
	})
}
