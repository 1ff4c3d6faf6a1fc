package leaderboard

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// DefaultTopN is the number of records returned when the caller does not ask
// for a specific limit.
const DefaultTopN = 10

// ErrEmptyName rejects score submissions without a display name. It is the
// only validation applied; duplicate names and negative scores are fine.
var ErrEmptyName = errors.New("name is required")

// Mode identifies which game a leaderboard belongs to. Each mode has its own
// board; they never mix.
type Mode string

const (
	ModeHiLo Mode = "hilo"
	ModeQuiz Mode = "quiz"
)

// ParseMode validates a client-supplied game mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeHiLo, ModeQuiz:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown game mode %q", s)
	}
}

// Record is one finished-game score row. Records are immutable once written;
// identity is insertion order.
type Record struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store is the persistence the leaderboard sits on: the per-mode score
// tables of the record store. TopScores must order by score descending with
// ties broken by insertion order.
type Store interface {
	AddScore(mode Mode, name string, score int) error
	TopScores(mode Mode, limit int) ([]Record, error)
}

// Leaderboard is the durable ranked record of finished-game scores for one
// game mode. A single mutex serializes concurrent appends and reads from
// many players; contention is low so nothing finer-grained is needed.
type Leaderboard struct {
	mu   sync.Mutex
	mode Mode
	db   Store
}

// New creates a leaderboard for the given mode over the given store.
func New(mode Mode, db Store) *Leaderboard {
	return &Leaderboard{mode: mode, db: db}
}

// Record appends a finished-game score. Round-trip scores can go negative,
// so negative values are accepted as-is.
func (l *Leaderboard) Record(name string, score int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.db.AddScore(l.mode, name, score); err != nil {
		return fmt.Errorf("record %s score: %w", l.mode, err)
	}
	return nil
}

// TopN returns at most n records sorted by score descending, stable under
// ties. Non-positive n falls back to DefaultTopN.
func (l *Leaderboard) TopN(n int) ([]Record, error) {
	if n <= 0 {
		n = DefaultTopN
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	records, err := l.db.TopScores(l.mode, n)
	if err != nil {
		return nil, fmt.Errorf("top %s scores: %w", l.mode, err)
	}
	return records, nil
}
