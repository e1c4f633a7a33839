package runs

const (
	queryCreate = `
		INSERT INTO tool_runs (id, user_id, tool_slug, input, output)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	queryList = `
		SELECT id, user_id, tool_slug, input, output, created_at
		FROM tool_runs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	queryCountByUser = `
		SELECT COUNT(*)
		FROM tool_runs
		WHERE user_id = $1
	`

	queryGet = `
		SELECT id, user_id, tool_slug, input, output, created_at
		FROM tool_runs
		WHERE id = $1 AND user_id = $2
	`
)
