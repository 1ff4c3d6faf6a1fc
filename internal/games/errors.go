package games

import "errors"

// Sentinel errors for the game engines. Handlers match these with errors.Is
// to pick the right client-facing error type.
var (
	// ErrInvalidInput marks a malformed or missing request field. The call
	// rejects the input before any state mutation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGameOver is returned when a round is requested on a terminal
	// session. The caller must finalize the game first.
	ErrGameOver = errors.New("game is over")
)
