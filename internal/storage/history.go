package storage

import (
	"fmt"
	"time"
)

// GameRecord is one finished game. Session groups the games of one program
// run.
type GameRecord struct {
	GameID   string
	Session  string
	Score    int
	Mazes    int       // mazes cleared
	PlayedAt time.Time // set by the database
}

// RecordGame appends a finished game to the history.
func (s *Store) RecordGame(r GameRecord) error {
	_, err := s.db.Exec(
		"INSERT INTO games (game_id, session, score, mazes, played_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)",
		r.GameID, r.Session, r.Score, r.Mazes,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record game: %w", err)
	}
	return nil
}

// RecentGames returns up to limit games of a variant, newest first.
func (s *Store) RecentGames(gameID string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT game_id, session, score, mazes, played_at
		 FROM games
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		var r GameRecord
		var playedAt any
		if err := rows.Scan(&r.GameID, &r.Session, &r.Score, &r.Mazes, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.PlayedAt = parseTimestamp(playedAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// GameStats summarises the history of a variant.
type GameStats struct {
	Games     int
	Sessions  int
	BestMazes int
	Average   float64 // mean score
}

// Stats aggregates the recorded games of a variant.
func (s *Store) Stats(gameID string) (GameStats, error) {
	var st GameStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT session), COALESCE(MAX(mazes), 0), COALESCE(AVG(score), 0)
		 FROM games WHERE game_id = ?`,
		gameID,
	).Scan(&st.Games, &st.Sessions, &st.BestMazes, &st.Average)
	if err != nil {
		return GameStats{}, fmt.Errorf("storage: cannot compute stats: %w", err)
	}
	return st, nil
}
