package store

import (
	"github.com/arcadelab/parlor/internal/leaderboard"
	"github.com/arcadelab/parlor/internal/questions"
)

// DB is the record store the server runs on: per-mode score tables plus the
// quiz question catalog. It satisfies both leaderboard.Store and
// questions.Store.
type DB interface {
	Close() error
	Migrate() error

	AddScore(mode leaderboard.Mode, name string, score int) error
	TopScores(mode leaderboard.Mode, limit int) ([]leaderboard.Record, error)

	ReplaceQuestions(entries []questions.Entry) ([]questions.Question, error)
	GetQuestion(id int64) (questions.Question, error)
	QuestionIDs() ([]int64, error)
}
