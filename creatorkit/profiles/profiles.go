package profiles

import (
	"context"
	"errors"

	apierrors "codeberg.org/creatorkit/server/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

// creates a new profile repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// finds a profile by OAuth provider or creates one on the free plan.
// The boolean reports whether the profile was created by this call.
func (r *Repository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, email string,
) (*Profile, bool, error) {
	var profile Profile
	var created bool

	err := r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		provider,
		providerID,
		email,
	).Scan(
		&profile.ID,
		&profile.Email,
		&profile.Provider,
		&profile.ProviderID,
		&profile.Plan,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&created,
	)

	if err != nil {
		return nil, false, err
	}

	return &profile, created, nil
}

// idempotently creates a profile on the free plan for an externally
// provisioned identity; a profile already existing via another path is
// an expected race, not a fault
func (r *Repository) Provision(ctx context.Context, userID, email string) (*Profile, error) {
	if _, err := r.db.Exec(ctx, queryProvision, userID, email); err != nil {
		// a concurrent provision winning the insert still means the
		// profile exists
		if !apierrors.IsUniqueViolation(err) {
			return nil, err
		}
	}

	return r.FindByID(ctx, userID)
}

// finds a profile by user id
func (r *Repository) FindByID(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile

	err := r.db.QueryRow(ctx, queryFindByID, userID).Scan(
		&profile.ID,
		&profile.Email,
		&profile.Provider,
		&profile.ProviderID,
		&profile.Plan,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// updates the caller's plan tier
func (r *Repository) UpdatePlan(ctx context.Context, userID, plan string) (*Profile, error) {
	var profile Profile

	err := r.db.QueryRow(ctx, queryUpdatePlan, plan, userID).Scan(
		&profile.ID,
		&profile.Email,
		&profile.Provider,
		&profile.ProviderID,
		&profile.Plan,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}

	if err != nil {
		return nil, err
	}

	return &profile, nil
}
