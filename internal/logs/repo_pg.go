package logs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new health log.
func (r *PGRepo) Create(ctx context.Context, log HealthLog) error {
	const query = `
INSERT INTO health_logs (id, user_id, title, description, body_parts, severity, date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	parts, err := marshalStringList(log.BodyParts)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		log.ID,
		log.UserID,
		log.Title,
		nullString(log.Description),
		parts,
		nullInt(log.Severity),
		log.Date,
		log.CreatedAt,
		log.UpdatedAt,
	)
	return err
}

// GetByID returns a log by ID scoped to the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, logID string) (HealthLog, error) {
	const query = `
SELECT id, user_id, title, description, body_parts, severity, date, created_at, updated_at
FROM health_logs
WHERE id = $1 AND user_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, logID, userID)
	log, err := scanLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HealthLog{}, ErrNotFound
		}
		return HealthLog{}, err
	}
	return log, nil
}

// Update rewrites the mutable fields of a log.
func (r *PGRepo) Update(ctx context.Context, log HealthLog) error {
	const query = `
UPDATE health_logs
SET title = $3, description = $4, body_parts = $5, severity = $6, date = $7, updated_at = $8
WHERE id = $1 AND user_id = $2`
	parts, err := marshalStringList(log.BodyParts)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		log.ID,
		log.UserID,
		log.Title,
		nullString(log.Description),
		parts,
		nullInt(log.Severity),
		log.Date,
		log.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a log scoped to the user.
func (r *PGRepo) Delete(ctx context.Context, userID, logID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM health_logs WHERE id = $1 AND user_id = $2`, logID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRecent returns logs with date >= since, newest first, capped at limit.
func (r *PGRepo) ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]HealthLog, error) {
	const query = `
SELECT id, user_id, title, description, body_parts, severity, date, created_at, updated_at
FROM health_logs
WHERE user_id = $1 AND date >= $2
ORDER BY date DESC
LIMIT $3`
	if limit <= 0 {
		limit = 365
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HealthLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, log)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (HealthLog, error) {
	var log HealthLog
	var description sql.NullString
	var parts sql.NullString
	var severity sql.NullInt64
	if err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.Title,
		&description,
		&parts,
		&severity,
		&log.Date,
		&log.CreatedAt,
		&log.UpdatedAt,
	); err != nil {
		return HealthLog{}, err
	}
	if description.Valid {
		log.Description = description.String
	}
	if parts.Valid && parts.String != "" {
		if err := json.Unmarshal([]byte(parts.String), &log.BodyParts); err != nil {
			log.BodyParts = nil
		}
	}
	if severity.Valid {
		v := int(severity.Int64)
		log.Severity = &v
	}
	return log, nil
}

func marshalStringList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

var _ Repo = (*PGRepo)(nil)
