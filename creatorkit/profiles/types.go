package profiles

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles profile database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a user profile; the identity itself is owned by the auth
// collaborator, the profile carries the plan tier
type Profile struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Provider   string    `json:"provider,omitempty"`
	ProviderID string    `json:"-"`
	Plan       string    `json:"plan"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
