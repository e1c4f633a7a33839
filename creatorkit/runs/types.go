package runs

import (
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles tool run history database operations
type Repository struct {
	db *pgxpool.Pool
}

// one recorded generation: the audit trail entry written after a
// successful generation, read back newest first
type Run struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	ToolSlug  string            `json:"tool_slug"`
	Input     map[string]string `json:"input"`
	Output    json.RawMessage   `json:"output"`
	CreatedAt time.Time         `json:"created_at"`
}
