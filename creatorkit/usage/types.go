package usage

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// tracks per-user per-UTC-day generation counts in postgres
type Ledger struct {
	db *pgxpool.Pool
}

// one day's generation count for a user
type DailyUsage struct {
	Date  string `json:"date"`  // format: "2006-01-02"
	Count int    `json:"count"` // number of generations
}
