package api

import "github.com/arcadelab/parlor/internal/leaderboard"

// APIError represents a structured error response.
type APIError struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e APIError) Error() string {
	return e.Message
}

// Error types surfaced to clients.
const (
	// Input validation errors: the request was malformed and no state changed.
	ErrTypeInvalidInput = "invalid_input"

	// Precondition violations: round requested on a terminal game, or the
	// question bank was not seeded.
	ErrTypePrecondition = "precondition_violation"

	// Resource exhaustion: no unseen questions left to sample. Unreachable
	// under a correct round-cap configuration.
	ErrTypeExhausted = "resource_exhausted"

	ErrTypeNotFound = "not_found"
	ErrTypeInternal = "internal_error"
)

// ScoreRequest is a finished-game score submission. Score is a pointer so a
// missing field can be told apart from an honest zero.
type ScoreRequest struct {
	Name  string `json:"name"`
	Score *int   `json:"score"`
	Game  string `json:"game"`
}

// ScoreResponse acknowledges a recorded score.
type ScoreResponse struct {
	Message string `json:"message"`
}

// ScoresResponse is the ordered top-N listing for one game mode.
type ScoresResponse struct {
	Game   string               `json:"game"`
	Scores []leaderboard.Record `json:"scores"`
}

// HiLoRoundResponse carries either a fresh round or, when the error budget
// is spent, the game-over payload with the final score and the current
// leaderboard.
type HiLoRoundResponse struct {
	Points          int  `json:"points"`
	ErrorsRemaining int  `json:"errors_remaining"`
	NumberFirst     int  `json:"number_first,omitempty"`
	NumberSecond    int  `json:"number_second,omitempty"`
	GameOver        bool `json:"game_over"`

	FinalScore *int                 `json:"final_score,omitempty"`
	TopScores  []leaderboard.Record `json:"top_scores,omitempty"`
}

// HiLoGuessRequest echoes the challenge numbers alongside the guess, the way
// the game page round-trips them. Validating them is a non-goal.
type HiLoGuessRequest struct {
	NumberFirst  int    `json:"number_first"`
	NumberSecond int    `json:"number_second"`
	Guess        string `json:"guess"`
}

// HiLoGuessResponse reports the outcome plus the original numbers for
// display.
type HiLoGuessResponse struct {
	Result          string `json:"result"`
	NumberFirst     int    `json:"number_first"`
	NumberSecond    int    `json:"number_second"`
	Points          int    `json:"points"`
	ErrorsRemaining int    `json:"errors_remaining"`
}

// QuizRoundResponse carries either the next question or the game-over
// payload once the error budget or the round cap is hit.
type QuizRoundResponse struct {
	Points          int    `json:"points"`
	ErrorsRemaining int    `json:"errors_remaining"`
	QuestionID      int64  `json:"question_id,omitempty"`
	Question        string `json:"question,omitempty"`
	RoundsPlayed    int    `json:"rounds_played"`
	GameOver        bool   `json:"game_over"`

	FinalScore *int                 `json:"final_score,omitempty"`
	TopScores  []leaderboard.Record `json:"top_scores,omitempty"`
}

// QuizAnswerRequest submits an answer for the given question id.
type QuizAnswerRequest struct {
	QuestionID int64  `json:"question_id"`
	Answer     string `json:"answer"`
}

// QuizAnswerResponse reports the outcome of one answered question.
type QuizAnswerResponse struct {
	Result          string `json:"result"`
	Points          int    `json:"points"`
	ErrorsRemaining int    `json:"errors_remaining"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}
