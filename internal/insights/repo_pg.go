package insights

import (
	"context"
	"database/sql"
)

// PGFlagsRepo implements FlagsRepo using Postgres.
type PGFlagsRepo struct {
	DB *sql.DB
}

// Insert appends a flag row.
func (r *PGFlagsRepo) Insert(ctx context.Context, flag AIFlag) error {
	const query = `
INSERT INTO ai_flags (id, user_id, log_id, title, reasoning_summary, severity, confidence_score, risk_score, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	var logID any
	if flag.LogID != nil {
		logID = *flag.LogID
	}
	_, err := r.DB.ExecContext(ctx, query,
		flag.ID,
		flag.UserID,
		logID,
		flag.Title,
		flag.ReasoningSummary,
		flag.Severity,
		flag.ConfidenceScore,
		flag.RiskScore,
		flag.CreatedAt,
	)
	return err
}

// ListByUser returns the user's flags, newest first.
func (r *PGFlagsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]AIFlag, error) {
	const query = `
SELECT id, user_id, log_id, title, reasoning_summary, severity, confidence_score, risk_score, created_at
FROM ai_flags
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AIFlag
	for rows.Next() {
		var flag AIFlag
		var logID sql.NullString
		if err := rows.Scan(
			&flag.ID,
			&flag.UserID,
			&logID,
			&flag.Title,
			&flag.ReasoningSummary,
			&flag.Severity,
			&flag.ConfidenceScore,
			&flag.RiskScore,
			&flag.CreatedAt,
		); err != nil {
			return nil, err
		}
		if logID.Valid {
			flag.LogID = &logID.String
		}
		out = append(out, flag)
	}
	return out, rows.Err()
}

// PGSummariesRepo implements SummariesRepo using Postgres.
type PGSummariesRepo struct {
	DB *sql.DB
}

// Insert appends a summary row.
func (r *PGSummariesRepo) Insert(ctx context.Context, summary AISummary) error {
	const query = `
INSERT INTO ai_summaries (id, user_id, summary_text, date_range_start, date_range_end, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	var start, end any
	if summary.DateRangeStart != nil {
		start = *summary.DateRangeStart
	}
	if summary.DateRangeEnd != nil {
		end = *summary.DateRangeEnd
	}
	_, err := r.DB.ExecContext(ctx, query,
		summary.ID,
		summary.UserID,
		summary.SummaryText,
		start,
		end,
		summary.CreatedAt,
	)
	return err
}

// ListByUser returns the user's summaries, newest first.
func (r *PGSummariesRepo) ListByUser(ctx context.Context, userID string, limit int) ([]AISummary, error) {
	const query = `
SELECT id, user_id, summary_text, date_range_start, date_range_end, created_at
FROM ai_summaries
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AISummary
	for rows.Next() {
		var summary AISummary
		var start, end sql.NullTime
		if err := rows.Scan(
			&summary.ID,
			&summary.UserID,
			&summary.SummaryText,
			&start,
			&end,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}
		if start.Valid {
			summary.DateRangeStart = &start.Time
		}
		if end.Valid {
			summary.DateRangeEnd = &end.Time
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

var (
	_ FlagsRepo     = (*PGFlagsRepo)(nil)
	_ SummariesRepo = (*PGSummariesRepo)(nil)
)
