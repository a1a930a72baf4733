package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Session queries.
const (
	queryUpsertSession = `
		INSERT INTO sessions (
			account_key, access_token, refresh_token, expires_in, user_id, issued_at, updated_at
		) VALUES (
			@account_key, @access_token, @refresh_token, @expires_in, @user_id, @issued_at, now()
		)
		ON CONFLICT (account_key) DO UPDATE SET
			access_token  = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_in    = EXCLUDED.expires_in,
			user_id       = EXCLUDED.user_id,
			issued_at     = EXCLUDED.issued_at,
			updated_at    = now()`

	queryGetSession = `
		SELECT access_token, refresh_token, expires_in, user_id, issued_at
		FROM sessions
		WHERE account_key = $1`

	queryDeleteSession = `DELETE FROM sessions WHERE account_key = $1`
)

// Sale queries.
const (
	queryUpsertSale = `
		INSERT INTO sales (
			sale_id, seller_id, listing_id, event_id, event_description,
			event_date, sale_date, status, quantity,
			section, seat_rows, seats, delivery_option,
			price_per_ticket, payout, currency, first_seen_at, updated_at
		) VALUES (
			@sale_id, @seller_id, @listing_id, @event_id, @event_description,
			@event_date, @sale_date, @status, @quantity,
			@section, @seat_rows, @seats, @delivery_option,
			@price_per_ticket, @payout, @currency, now(), now()
		)
		ON CONFLICT (sale_id) DO UPDATE SET
			status           = EXCLUDED.status,
			quantity         = EXCLUDED.quantity,
			section          = EXCLUDED.section,
			seat_rows        = EXCLUDED.seat_rows,
			seats            = EXCLUDED.seats,
			delivery_option  = EXCLUDED.delivery_option,
			price_per_ticket = EXCLUDED.price_per_ticket,
			payout           = EXCLUDED.payout,
			currency         = EXCLUDED.currency,
			updated_at       = now()`

	queryExistingSaleIDs = `SELECT sale_id FROM sales WHERE sale_id = ANY($1)`
)

// Sync run queries.
const (
	queryInsertSyncRun = `
		INSERT INTO sync_runs (id, job_name, status)
		VALUES ($1, $2, 'running')`

	queryCompleteSyncRun = `
		UPDATE sync_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListSyncRuns = `
		SELECT id::text, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM sync_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryMarkStaleSyncRunsCrashed = `
		UPDATE sync_runs SET
			status       = 'crashed',
			completed_at = now(),
			error_text   = 'interrupted before completion'
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldSyncRuns = `
		DELETE FROM sync_runs WHERE started_at < now() - interval '90 days'`
)
