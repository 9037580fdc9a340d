package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameResult is one finished session, win or loss.
type GameResult struct {
	ID        string // UUID, assigned by SaveResult when empty
	GameID    string
	Preset    string
	Width     int
	Height    int
	Mines     int
	Won       bool
	Duration  time.Duration
	CellsDug  int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int // Finished sessions, from the result history
	Wins       int
	HighScore  int
	AvgScore   float64
	BestTime   time.Duration // Fastest win, zero when there is none
	LastPlayed time.Time
}

// WinRate returns the fraction of finished sessions that were won.
func (g GameStats) WinRate() float64 {
	if g.GamesCount == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.GamesCount)
}

const resultColumns = `id, game_id, preset, width, height, mines, won, duration_ms, cells_dug, created_at`

// SaveResult records a finished session and returns its ID.
func (s *Store) SaveResult(r GameResult) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	} else if _, err := uuid.Parse(r.ID); err != nil {
		return "", fmt.Errorf("storage: invalid result ID %q: %w", r.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO game_results (id, game_id, preset, width, height, mines, won, duration_ms, cells_dug)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Preset, r.Width, r.Height, r.Mines, r.Won, r.Duration.Milliseconds(), r.CellsDug,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.ID, nil
}

// RecentResults returns the latest finished sessions for a game, newest first.
func (s *Store) RecentResults(gameID string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM game_results
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// ResultByID retrieves one session. Returns nil if the ID is unknown.
func (s *Store) ResultByID(id string) (*GameResult, error) {
	row := s.db.QueryRow(`SELECT `+resultColumns+` FROM game_results WHERE id = ?`, id)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (GameResult, error) {
	var (
		r          GameResult
		durationMS int64
		createdAt  any
	)
	err := row.Scan(&r.ID, &r.GameID, &r.Preset, &r.Width, &r.Height, &r.Mines,
		&r.Won, &durationMS, &r.CellsDug, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan result: %w", err)
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get score stats: %w", err)
	}

	var bestMS sql.NullInt64
	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), MIN(CASE WHEN won THEN duration_ms END)
		 FROM game_results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Wins, &bestMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get result stats: %w", err)
	}
	if bestMS.Valid {
		stats.BestTime = time.Duration(bestMS.Int64) * time.Millisecond
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM game_results WHERE game_id = ?
		 UNION ALL
		 SELECT created_at FROM scores WHERE game_id = ?
		 ORDER BY created_at DESC LIMIT 1`,
		gameID, gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
