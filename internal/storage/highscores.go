package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// HighScoreEntry is the best score recorded for one variant.
type HighScoreEntry struct {
	GameID    string
	Score     int
	UpdatedAt time.Time
}

// HighScore returns the stored high score of a variant, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE game_id = ?", gameID).Scan(&score)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("storage: cannot get high score: %w", err)
	}
	return score, nil
}

// SaveHighScore stores score if it beats the stored value and reports whether
// it did. Non-positive scores are never stored.
func (s *Store) SaveHighScore(gameID string, score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	res, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE
		 SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		gameID, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// AllHighScores returns every stored high score, ordered by variant.
func (s *Store) AllHighScores() ([]HighScoreEntry, error) {
	rows, err := s.db.Query("SELECT game_id, score, updated_at FROM high_scores ORDER BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []HighScoreEntry
	for rows.Next() {
		var e HighScoreEntry
		var updatedAt any
		if err := rows.Scan(&e.GameID, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearHighScore removes the high score and the game history of a variant.
func (s *Store) ClearHighScore(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	for _, q := range []string{
		"DELETE FROM high_scores WHERE game_id = ?",
		"DELETE FROM games WHERE game_id = ?",
	} {
		if _, err := tx.Exec(q, gameID); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot clear high score: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}
