package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/arcadelab/parlor/internal/games"
)

// Store keeps per-player game state in memory, keyed by the uuid carried in
// the player's cookie. Each game mode has its own slot so a player can have
// a hilo game and a quiz game going at once. Reads of a missing session
// return the documented initial state.
type Store struct {
	mu   sync.RWMutex
	hilo map[string]games.HiLoSession
	quiz map[string]games.QuizSession
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		hilo: make(map[string]games.HiLoSession),
		quiz: make(map[string]games.QuizSession),
	}
}

// NewID mints a fresh session identifier.
func NewID() string {
	return uuid.New().String()
}

// HiLo returns the player's hilo state, initialized to defaults on first
// access.
func (s *Store) HiLo(id string) games.HiLoSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.hilo[id]; ok {
		return state
	}
	return games.NewHiLoSession()
}

// PutHiLo stores the player's hilo state.
func (s *Store) PutHiLo(id string, state games.HiLoSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hilo[id] = state
}

// Quiz returns the player's quiz state, initialized to defaults on first
// access.
func (s *Store) Quiz(id string) games.QuizSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.quiz[id]; ok {
		return state
	}
	return games.NewQuizSession()
}

// PutQuiz stores the player's quiz state.
func (s *Store) PutQuiz(id string, state games.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz[id] = state
}
