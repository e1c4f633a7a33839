package usage

const (
	queryCount = `
		SELECT count
		FROM usage_daily
		WHERE user_id = $1 AND date = $2
	`

	// single-statement compare-and-increment: the conditional DO UPDATE
	// only fires while the stored count is below the limit, so two
	// concurrent requests can never both observe the same stale count.
	// No row returned means the limit was already reached and nothing
	// was incremented.
	queryTryIncrement = `
		INSERT INTO usage_daily (user_id, date, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, date)
		DO UPDATE SET count = usage_daily.count + 1
		WHERE usage_daily.count < $3
		RETURNING count
	`

	queryHistory = `
		SELECT to_char(date, 'YYYY-MM-DD') AS date, count
		FROM usage_daily
		WHERE user_id = $1
		  AND date >= CURRENT_DATE - INTERVAL '30 days'
		ORDER BY date DESC
	`
)
