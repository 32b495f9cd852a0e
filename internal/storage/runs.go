package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is the record of one finished game: how far the player got and how
// the board behaved along the way.
type Run struct {
	ID            string // UUID, assigned by SaveRun when empty
	GameID        string
	Player        string
	Seed          int64
	Score         int
	Level         int
	Swaps         int
	Misses        int
	Cascades      int
	Regenerations int
	Duration      int    // Duration in seconds
	EndReason     string // "won", "out_of_moves", "unsolvable", "quit"
	CreatedAt     time.Time
}

// RunSummary aggregates the runs of one game.
type RunSummary struct {
	GameID        string
	Runs          int
	Wins          int
	BestLevel     int
	TotalSwaps    int
	TotalMisses   int
	TotalCascades int
	Regenerations int
}

// Accuracy returns the share of swap attempts that made a match.
func (r RunSummary) Accuracy() float64 {
	attempts := r.TotalSwaps + r.TotalMisses
	if attempts == 0 {
		return 0
	}
	return float64(r.TotalSwaps) / float64(attempts)
}

const runColumns = `id, game_id, player, seed, score, level, swaps, misses,
	cascades, regenerations, duration_secs, end_reason, created_at`

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, game_id, player, seed, score, level, swaps, misses, cascades, regenerations, duration_secs, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.GameID,
		run.Player,
		run.Seed,
		run.Score,
		run.Level,
		run.Swaps,
		run.Misses,
		run.Cascades,
		run.Regenerations,
		run.Duration,
		run.EndReason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// RecentRuns retrieves the most recent runs of a game. An empty gameID
// returns runs of every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
}

// PlayerRuns retrieves the run history of one player.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE player = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		player, limit,
	)
}

// GetRunSummary aggregates every run of a game.
func (s *Store) GetRunSummary(gameID string) (*RunSummary, error) {
	sum := &RunSummary{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN end_reason = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(level), 0),
		        COALESCE(SUM(swaps), 0),
		        COALESCE(SUM(misses), 0),
		        COALESCE(SUM(cascades), 0),
		        COALESCE(SUM(regenerations), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Runs, &sum.Wins, &sum.BestLevel, &sum.TotalSwaps, &sum.TotalMisses, &sum.TotalCascades, &sum.Regenerations)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run summary: %w", err)
	}
	return sum, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var createdAt any
	err := row.Scan(
		&run.ID,
		&run.GameID,
		&run.Player,
		&run.Seed,
		&run.Score,
		&run.Level,
		&run.Swaps,
		&run.Misses,
		&run.Cascades,
		&run.Regenerations,
		&run.Duration,
		&run.EndReason,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}
