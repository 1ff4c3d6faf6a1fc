package games

import (
	"fmt"
	"math/rand"
)

// Guess is the player's call on the second number relative to the first.
type Guess string

const (
	GuessHigher Guess = "Higher"
	GuessLower  Guess = "Lower"
)

// ParseGuess validates a client-supplied guess value.
func ParseGuess(s string) (Guess, error) {
	switch Guess(s) {
	case GuessHigher, GuessLower:
		return Guess(s), nil
	default:
		return "", fmt.Errorf("%w: guess must be %q or %q", ErrInvalidInput, GuessHigher, GuessLower)
	}
}

// Outcome of an answered round.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// HiLoChallenge is one round of the higher/lower game: two distinct numbers
// in [1,10]. Challenges are ephemeral and never reused after being answered.
type HiLoChallenge struct {
	First  int `json:"number_first"`
	Second int `json:"number_second"`
}

const (
	hiloMin = 1
	hiloMax = 10

	// Equal pairs are rejected and redrawn so every round has a determinate
	// higher/lower answer. The retry loop is bounded; with ten values an
	// equal pair is a 10% draw, so the cap is never hit in practice.
	hiloDrawAttempts = 64
)

// HiLoEngine generates rounds and evaluates guesses for the higher/lower
// game. It is stateless: all per-player state lives in the HiLoSession the
// caller passes in, so a single engine serves every player.
type HiLoEngine struct{}

// NewHiLoEngine creates a higher/lower engine.
func NewHiLoEngine() *HiLoEngine { return &HiLoEngine{} }

// StartRound draws the next pair of numbers. If the session is terminal the
// round is refused; the caller must Finalize first.
func (e *HiLoEngine) StartRound(s HiLoSession) (HiLoSession, HiLoChallenge, error) {
	if s.Over() {
		return s, HiLoChallenge{}, fmt.Errorf("hilo: %w", ErrGameOver)
	}
	for i := 0; i < hiloDrawAttempts; i++ {
		first := hiloMin + rand.Intn(hiloMax-hiloMin+1)
		second := hiloMin + rand.Intn(hiloMax-hiloMin+1)
		if first != second {
			return s, HiLoChallenge{First: first, Second: second}, nil
		}
	}
	return s, HiLoChallenge{}, fmt.Errorf("hilo: no distinct pair after %d draws", hiloDrawAttempts)
}

// SubmitGuess evaluates a guess against the challenge and applies the score
// delta. A malformed guess is rejected without touching the session, and a
// terminal session is refused so the error budget never goes below zero.
func (e *HiLoEngine) SubmitGuess(s HiLoSession, c HiLoChallenge, guess Guess) (HiLoSession, Outcome, error) {
	if guess != GuessHigher && guess != GuessLower {
		return s, "", fmt.Errorf("%w: unknown guess %q", ErrInvalidInput, guess)
	}
	if s.Over() {
		return s, "", fmt.Errorf("hilo: %w", ErrGameOver)
	}
	correct := (guess == GuessHigher && c.Second > c.First) ||
		(guess == GuessLower && c.Second < c.First)
	if correct {
		s.Points += PointsPerRound
		return s, OutcomeCorrect, nil
	}
	s.Points -= PointsPerRound
	s.ErrorsRemaining--
	return s, OutcomeIncorrect, nil
}

// Finalize reads the terminal score and hands back a fresh session for the
// next game.
func (e *HiLoEngine) Finalize(s HiLoSession) (int, HiLoSession) {
	return s.Points, NewHiLoSession()
}
