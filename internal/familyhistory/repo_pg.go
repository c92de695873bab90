package familyhistory

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new entry.
func (r *PGRepo) Create(ctx context.Context, entry Entry) error {
	const query = `
INSERT INTO family_history (id, user_id, condition_name, relationship, age_of_onset,
    notes, confidence_level, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.ConditionName,
		entry.Relationship,
		nullInt(entry.AgeOfOnset),
		nullString(entry.Notes),
		entry.ConfidenceLevel,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	return err
}

// GetByID returns an entry by ID scoped to the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, entryID string) (Entry, error) {
	const query = `
SELECT id, user_id, condition_name, relationship, age_of_onset, notes, confidence_level, created_at, updated_at
FROM family_history
WHERE id = $1 AND user_id = $2
LIMIT 1`
	entry, err := scanEntry(r.DB.QueryRowContext(ctx, query, entryID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return entry, nil
}

// Update rewrites the mutable fields of an entry.
func (r *PGRepo) Update(ctx context.Context, entry Entry) error {
	const query = `
UPDATE family_history
SET condition_name = $3, relationship = $4, age_of_onset = $5, notes = $6,
    confidence_level = $7, updated_at = $8
WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.ConditionName,
		entry.Relationship,
		nullInt(entry.AgeOfOnset),
		nullString(entry.Notes),
		entry.ConfidenceLevel,
		entry.UpdatedAt,
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

// Delete removes an entry scoped to the user.
func (r *PGRepo) Delete(ctx context.Context, userID, entryID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM family_history WHERE id = $1 AND user_id = $2`, entryID, userID)
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

// ListByUser returns the user's entries, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	const query = `
SELECT id, user_id, condition_name, relationship, age_of_onset, notes, confidence_level, created_at, updated_at
FROM family_history
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var entry Entry
	var age sql.NullInt64
	var notes sql.NullString
	if err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.ConditionName,
		&entry.Relationship,
		&age,
		&notes,
		&entry.ConfidenceLevel,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return Entry{}, err
	}
	if age.Valid {
		v := int(age.Int64)
		entry.AgeOfOnset = &v
	}
	entry.Notes = notes.String
	return entry, nil
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
