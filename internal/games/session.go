package games

// Session defaults and scoring constants shared by both games.
const (
	HiLoStartPoints = 100
	QuizStartPoints = 0
	StartErrors     = 3

	// PointsPerRound is added on a correct outcome and subtracted on an
	// incorrect one. Points may go negative; no floor is enforced.
	PointsPerRound = 50

	// QuizRoundCap bounds how many distinct questions one quiz game asks.
	QuizRoundCap = 10
)

// HiLoSession is the per-player state for the higher/lower game. It is owned
// by the calling web layer (one player's HTTP session) and passed into every
// engine call; the engine never retains it.
type HiLoSession struct {
	Points          int `json:"points"`
	ErrorsRemaining int `json:"errors_remaining"`
}

// NewHiLoSession returns the initial state for a fresh higher/lower game.
func NewHiLoSession() HiLoSession {
	return HiLoSession{Points: HiLoStartPoints, ErrorsRemaining: StartErrors}
}

// Over reports whether the error budget is exhausted. A terminal session
// must be finalized before a new round can be generated.
func (s HiLoSession) Over() bool { return s.ErrorsRemaining <= 0 }

// QuizSession is the per-player state for the trivia game. AskedIDs tracks
// the question ids already played this game so no question repeats; its
// length also bounds the round count.
type QuizSession struct {
	Points          int     `json:"points"`
	ErrorsRemaining int     `json:"errors_remaining"`
	AskedIDs        []int64 `json:"asked_ids"`
}

// NewQuizSession returns the initial state for a fresh quiz game.
func NewQuizSession() QuizSession {
	return QuizSession{Points: QuizStartPoints, ErrorsRemaining: StartErrors}
}

// Over reports whether the game is terminal: the error budget is spent or
// the round cap has been reached.
func (s QuizSession) Over() bool {
	return s.ErrorsRemaining <= 0 || len(s.AskedIDs) >= QuizRoundCap
}

// Fresh reports whether no round has been played yet this game.
func (s QuizSession) Fresh() bool { return len(s.AskedIDs) == 0 }
