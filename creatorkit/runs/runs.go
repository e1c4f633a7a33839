package runs

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRunNotFound = errors.New("run not found")

// creates a new run history repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// records one completed generation; write-once, owned by the user
func (r *Repository) Create(
	ctx context.Context,
	userID, toolSlug string,
	input map[string]string,
	output any,
) (*Run, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	outputJSON, err := json.Marshal(output)
	if err != nil {
		return nil, err
	}

	run := Run{
		ID:       uuid.NewString(),
		UserID:   userID,
		ToolSlug: toolSlug,
		Input:    input,
		Output:   outputJSON,
	}

	err = r.db.QueryRow(
		ctx,
		queryCreate,
		run.ID,
		run.UserID,
		run.ToolSlug,
		inputJSON,
		outputJSON,
	).Scan(&run.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &run, nil
}

// lists the user's runs in reverse-chronological order with the total
// count for pagination
func (r *Repository) List(ctx context.Context, userID string, limit, offset int) ([]Run, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountByUser, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	list := []Run{}

	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, err
		}

		list = append(list, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// fetches a single run owned by the user
func (r *Repository) Get(ctx context.Context, runID, userID string) (*Run, error) {
	// a malformed id cannot match any row; rejecting it up front keeps
	// the uuid column cast from turning bad input into a query error
	if _, err := uuid.Parse(runID); err != nil {
		return nil, ErrRunNotFound
	}

	row := r.db.QueryRow(ctx, queryGet, runID, userID)

	run, err := scanRun(row)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}

	if err != nil {
		return nil, err
	}

	return run, nil
}

func scanRun(row pgx.Row) (*Run, error) {
	var run Run
	var inputJSON []byte

	err := row.Scan(
		&run.ID,
		&run.UserID,
		&run.ToolSlug,
		&inputJSON,
		&run.Output,
		&run.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	if len(inputJSON) > 0 {
		if err := json.Unmarshal(inputJSON, &run.Input); err != nil {
			run.Input = nil // ignore malformed JSON
		}
	}

	return &run, nil
}
