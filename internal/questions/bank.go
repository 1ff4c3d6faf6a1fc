package questions

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

var (
	// ErrNotFound is returned when no question carries the requested id,
	// typically because a reseed invalidated it.
	ErrNotFound = errors.New("question not found")

	// ErrExhausted is returned when every question id is excluded. Under the
	// quiz round cap this should never happen with a full catalog; hitting
	// it is a configuration error, not something to retry.
	ErrExhausted = errors.New("no unseen questions left")

	// ErrEmptyBank is returned when the catalog has not been seeded yet.
	ErrEmptyBank = errors.New("question bank is empty")
)

// Entry is a question/answer pair before catalog ids are assigned.
type Entry struct {
	Question string
	Answer   string
}

// Question is one catalog row. Answer is the canonical form compared
// case-insensitively against player submissions.
type Question struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Store is the persistence the bank sits on: the quiz table of the record
// store.
type Store interface {
	ReplaceQuestions(entries []Entry) ([]Question, error)
	GetQuestion(id int64) (Question, error)
	QuestionIDs() ([]int64, error)
}

// Bank is the fixed, reloadable catalog of trivia questions. Reseeding
// replaces the whole catalog and reassigns ids, so ids are only valid within
// one quiz game's lifetime; a reseed mid-game invalidates in-flight ids for
// every player. The mutex keeps reseeds atomic with respect to concurrent
// lookups and samples.
type Bank struct {
	mu sync.Mutex
	db Store
}

// NewBank creates a bank over the given store. The catalog is empty until
// the first Reseed.
func NewBank(db Store) *Bank {
	return &Bank{db: db}
}

// Reseed atomically replaces the entire catalog. Answers are trimmed to
// their canonical form before storage.
func (b *Bank) Reseed(entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("reseed: catalog must not be empty")
	}
	canonical := make([]Entry, len(entries))
	for i, e := range entries {
		question := strings.TrimSpace(e.Question)
		answer := strings.TrimSpace(e.Answer)
		if question == "" || answer == "" {
			return fmt.Errorf("reseed: entry %d has an empty question or answer", i)
		}
		canonical[i] = Entry{Question: question, Answer: answer}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := b.db.ReplaceQuestions(canonical); err != nil {
		return fmt.Errorf("reseed: %w", err)
	}
	return nil
}

// Lookup resolves a question by id.
func (b *Bank) Lookup(id int64) (Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.db.GetQuestion(id)
}

// SampleExcluding picks a question uniformly at random among ids not in the
// exclusion set.
func (b *Bank) SampleExcluding(exclude []int64) (Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids, err := b.db.QuestionIDs()
	if err != nil {
		return Question{}, err
	}
	if len(ids) == 0 {
		return Question{}, ErrEmptyBank
	}

	excluded := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}
	candidates := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := excluded[id]; !ok {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return Question{}, ErrExhausted
	}

	return b.db.GetQuestion(candidates[rand.Intn(len(candidates))])
}

// Size reports how many questions the catalog currently holds.
func (b *Bank) Size() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids, err := b.db.QuestionIDs()
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
