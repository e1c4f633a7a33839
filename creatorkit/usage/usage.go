package usage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new usage ledger backed by postgres
func NewLedger(db *pgxpool.Pool) *Ledger {
	return &Ledger{db: db}
}

// returns the generation count for a user on a UTC calendar day;
// absence of a record is 0, not an error
func (l *Ledger) Count(ctx context.Context, userID, day string) (int, error) {
	var count int

	err := l.db.QueryRow(ctx, queryCount, userID, day).Scan(&count)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	return count, nil
}

// atomically increments the counter for (user, day) if and only if the
// stored count is below limit. Returns the post-increment count and
// whether the increment was admitted. Denied calls leave the counter
// untouched.
func (l *Ledger) TryIncrement(ctx context.Context, userID, day string, limit int) (int, bool, error) {
	var count int

	err := l.db.QueryRow(ctx, queryTryIncrement, userID, day, limit).Scan(&count)

	if errors.Is(err, pgx.ErrNoRows) {
		// conditional update declined: the limit was already reached
		return 0, false, nil
	}

	if err != nil {
		return 0, false, err
	}

	return count, true, nil
}

// returns per-day counts for the trailing 30 days, newest first
func (l *Ledger) History(ctx context.Context, userID string) ([]DailyUsage, error) {
	rows, err := l.db.Query(ctx, queryHistory, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	history := []DailyUsage{}

	for rows.Next() {
		var du DailyUsage

		if err := rows.Scan(&du.Date, &du.Count); err != nil {
			return nil, err
		}

		history = append(history, du)
	}

	return history, rows.Err()
}
