// internal/results/store.go
//
// Won deals and the leaderboard built from them.

package results

import (
	"context"
	"database/sql"
	"errors"
)

// ErrInvalidResult is returned for rows that could never come from a won deal.
var ErrInvalidResult = errors.New("invalid result")

// Result is one won deal.
type Result struct {
	DealID    string `json:"dealId"`
	Pairs     int    `json:"pairs"`
	Tries     int    `json:"tries"`
	ElapsedMs int64  `json:"elapsedMs"`
	DailyDate string `json:"dailyDate,omitempty"` // YYYY-MM-DD for daily deals
}

// LBRow is a leaderboard entry.
type LBRow struct {
	DealID     string `json:"dealId"`
	Tries      int    `json:"tries"`
	ElapsedMs  int64  `json:"elapsedMs"`
	FinishedAt string `json:"finishedAt"`
}

// Store reads and writes the results table.
type Store struct{ db *sql.DB }

// NewStore wraps an opened, migrated database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert records r. A deal is only recorded once; repeats are ignored.
// One click can resolve several pairs when cards share edges, so tries is
// only required to be positive.
func (s *Store) Insert(ctx context.Context, r Result) error {
	if r.DealID == "" || r.Pairs <= 0 || r.Tries < 1 || r.ElapsedMs < 0 {
		return ErrInvalidResult
	}
	var daily any
	if r.DailyDate != "" {
		daily = r.DailyDate
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results(deal_id, pairs, tries, elapsed_ms, daily_date)
VALUES(?,?,?,?,?)`, r.DealID, r.Pairs, r.Tries, r.ElapsedMs, daily,
	)
	return err
}

// Leaderboard returns the best results for a board size, fewest tries first
// and then fastest. An empty date selects free-play deals, otherwise the
// daily deals of that date.
func (s *Store) Leaderboard(ctx context.Context, pairs int, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT deal_id, tries, elapsed_ms, finished_at
FROM results
WHERE pairs=? AND COALESCE(daily_date,'')=?
ORDER BY tries ASC, elapsed_ms ASC, finished_at ASC, id ASC
LIMIT ?`, pairs, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.DealID, &r.Tries, &r.ElapsedMs, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of recorded deals.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM results`).Scan(&n)
	return n, err
}
