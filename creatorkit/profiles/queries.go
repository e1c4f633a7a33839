package profiles

const (
	// xmax = 0 only on freshly inserted rows, which tells the caller
	// whether this was the user's first sign-in
	queryFindOrCreateByProvider = `
		INSERT INTO profiles (provider, provider_id, email, plan)
		VALUES ($1, $2, $3, 'free')
		ON CONFLICT (provider, provider_id) WHERE provider <> ''
		DO UPDATE SET
			email = EXCLUDED.email,
			updated_at = NOW()
		RETURNING id, email, provider, provider_id, plan, created_at, updated_at, (xmax = 0) AS created
	`

	queryProvision = `
		INSERT INTO profiles (id, email, plan)
		VALUES ($1, $2, 'free')
		ON CONFLICT (id) DO NOTHING
	`

	queryFindByID = `
		SELECT id, email, provider, provider_id, plan, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	queryUpdatePlan = `
		UPDATE profiles
		SET plan = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, email, provider, provider_id, plan, created_at, updated_at
	`
)
