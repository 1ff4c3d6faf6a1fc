package games

import (
	"fmt"
	"strings"

	"github.com/arcadelab/parlor/internal/questions"
)

// QuestionSource is the slice of the question bank the quiz engine needs:
// resolving a question by id and sampling one not asked yet.
type QuestionSource interface {
	Lookup(id int64) (questions.Question, error)
	SampleExcluding(exclude []int64) (questions.Question, error)
}

// QuizChallenge is one selected question presented to the player. The answer
// stays in the bank; only the prompt leaves the server.
type QuizChallenge struct {
	ID     int64  `json:"question_id"`
	Prompt string `json:"question"`
}

// QuizEngine generates rounds and evaluates answers for the trivia game,
// drawing non-repeating questions from a QuestionSource. Like HiLoEngine it
// is stateless over the session passed in.
type QuizEngine struct{}

// NewQuizEngine creates a quiz engine.
func NewQuizEngine() *QuizEngine { return &QuizEngine{} }

// StartRound samples a question not yet asked this game and records its id
// in the session. Terminal sessions (error budget spent or round cap hit)
// are refused; the caller must Finalize first.
func (e *QuizEngine) StartRound(s QuizSession, bank QuestionSource) (QuizSession, QuizChallenge, error) {
	if s.Over() {
		return s, QuizChallenge{}, fmt.Errorf("quiz: %w", ErrGameOver)
	}
	q, err := bank.SampleExcluding(s.AskedIDs)
	if err != nil {
		return s, QuizChallenge{}, fmt.Errorf("quiz: sample question: %w", err)
	}
	// Copy-append so the caller's previous state value keeps its own id list.
	asked := make([]int64, 0, len(s.AskedIDs)+1)
	asked = append(asked, s.AskedIDs...)
	s.AskedIDs = append(asked, q.ID)
	return s, QuizChallenge{ID: q.ID, Prompt: q.Question}, nil
}

// SubmitAnswer compares the submitted text against the stored answer of the
// exact question id supplied, case-insensitively with surrounding whitespace
// trimmed, and applies the score delta. Malformed input is rejected without
// touching the session.
func (e *QuizEngine) SubmitAnswer(s QuizSession, bank QuestionSource, questionID int64, answerText string) (QuizSession, Outcome, error) {
	answer := strings.TrimSpace(answerText)
	if answer == "" {
		return s, "", fmt.Errorf("%w: answer is required", ErrInvalidInput)
	}
	if questionID <= 0 {
		return s, "", fmt.Errorf("%w: question id is required", ErrInvalidInput)
	}
	// Only the error budget gates answering. The round cap gates new rounds,
	// but the question served when the cap was hit still deserves its answer.
	if s.ErrorsRemaining <= 0 {
		return s, "", fmt.Errorf("quiz: %w", ErrGameOver)
	}
	q, err := bank.Lookup(questionID)
	if err != nil {
		return s, "", fmt.Errorf("quiz: resolve answer for question %d: %w", questionID, err)
	}
	if strings.EqualFold(answer, strings.TrimSpace(q.Answer)) {
		s.Points += PointsPerRound
		return s, OutcomeCorrect, nil
	}
	s.Points -= PointsPerRound
	s.ErrorsRemaining--
	return s, OutcomeIncorrect, nil
}

// Finalize reads the terminal score and hands back a fresh session. The
// asked-question history is cleared along with points and errors, so the
// next game may ask anything again.
func (e *QuizEngine) Finalize(s QuizSession) (int, QuizSession) {
	return s.Points, NewQuizSession()
}
