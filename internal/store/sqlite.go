package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/arcadelab/parlor/internal/leaderboard"
	"github.com/arcadelab/parlor/internal/questions"
)

// SQLiteDB implements the DB interface using SQLite.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new SQLite database connection.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the score and question tables. Safe to run on every start.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quiz (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question TEXT NOT NULL,
			answer TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_high_scores_score ON high_scores(score DESC, id ASC)`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_scores_score ON quiz_scores(score DESC, id ASC)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// scoreTable maps a game mode to its score table. Modes have separate tables
// so the boards never mix.
func scoreTable(mode leaderboard.Mode) (string, error) {
	switch mode {
	case leaderboard.ModeHiLo:
		return "high_scores", nil
	case leaderboard.ModeQuiz:
		return "quiz_scores", nil
	default:
		return "", fmt.Errorf("unknown game mode %q", mode)
	}
}

// AddScore appends a finished-game score row for the given mode.
func (s *SQLiteDB) AddScore(mode leaderboard.Mode, name string, score int) error {
	table, err := scoreTable(mode)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("INSERT INTO %s (name, score) VALUES (?, ?)", table)
	if _, err := s.db.Exec(query, name, score); err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}
	return nil
}

// TopScores returns at most limit rows for the given mode, ordered by score
// descending. The id tiebreak keeps equal scores in insertion order.
func (s *SQLiteDB) TopScores(mode leaderboard.Mode, limit int) ([]leaderboard.Record, error) {
	table, err := scoreTable(mode)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT name, score FROM %s ORDER BY score DESC, id ASC LIMIT ?", table)
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var records []leaderboard.Record
	for rows.Next() {
		var rec leaderboard.Record
		if err := rows.Scan(&rec.Name, &rec.Score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ReplaceQuestions clears the quiz table and writes the given catalog in one
// transaction. Ids are reassigned; the returned rows carry the new ids.
func (s *SQLiteDB) ReplaceQuestions(entries []questions.Entry) ([]questions.Question, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM quiz"); err != nil {
		return nil, fmt.Errorf("failed to clear questions: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO quiz (question, answer) VALUES (?, ?)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	rows := make([]questions.Question, 0, len(entries))
	for _, e := range entries {
		res, err := stmt.Exec(e.Question, e.Answer)
		if err != nil {
			return nil, fmt.Errorf("failed to insert question: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		rows = append(rows, questions.Question{ID: id, Question: e.Question, Answer: e.Answer})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetQuestion resolves a question row by id.
func (s *SQLiteDB) GetQuestion(id int64) (questions.Question, error) {
	var q questions.Question
	err := s.db.QueryRow("SELECT id, question, answer FROM quiz WHERE id = ?", id).
		Scan(&q.ID, &q.Question, &q.Answer)
	if errors.Is(err, sql.ErrNoRows) {
		return questions.Question{}, fmt.Errorf("question %d: %w", id, questions.ErrNotFound)
	}
	if err != nil {
		return questions.Question{}, fmt.Errorf("failed to query question: %w", err)
	}
	return q, nil
}

// QuestionIDs lists every catalog id in insertion order.
func (s *SQLiteDB) QuestionIDs() ([]int64, error) {
	rows, err := s.db.Query("SELECT id FROM quiz ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query question ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan question id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
