package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetByUser returns the profile row for a user, or ErrNotFound.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (HealthProfile, error) {
	const query = `
SELECT user_id, allergies, height, weight, family_history,
       lifestyle_sleep_hours, lifestyle_activity_level, lifestyle_diet_type, updated_at
FROM health_profile
WHERE user_id = $1
LIMIT 1`
	var p HealthProfile
	var allergies sql.NullString
	var height sql.NullFloat64
	var weight sql.NullFloat64
	var familyHistory sql.NullString
	var sleepHours sql.NullFloat64
	var activityLevel sql.NullString
	var dietType sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&allergies,
		&height,
		&weight,
		&familyHistory,
		&sleepHours,
		&activityLevel,
		&dietType,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HealthProfile{}, ErrNotFound
		}
		return HealthProfile{}, err
	}
	if allergies.Valid {
		_ = json.Unmarshal([]byte(allergies.String), &p.Allergies)
	}
	if height.Valid {
		p.Height = &height.Float64
	}
	if weight.Valid {
		p.Weight = &weight.Float64
	}
	if familyHistory.Valid {
		_ = json.Unmarshal([]byte(familyHistory.String), &p.FamilyHistory)
	}
	if sleepHours.Valid {
		p.LifestyleSleepHours = &sleepHours.Float64
	}
	if activityLevel.Valid {
		p.LifestyleActivityLevel = activityLevel.String
	}
	if dietType.Valid {
		p.LifestyleDietType = dietType.String
	}
	return p, nil
}

// Upsert inserts or replaces the profile row for a user.
func (r *PGRepo) Upsert(ctx context.Context, p HealthProfile) error {
	const query = `
INSERT INTO health_profile (user_id, allergies, height, weight, family_history,
    lifestyle_sleep_hours, lifestyle_activity_level, lifestyle_diet_type, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id) DO UPDATE SET
    allergies = EXCLUDED.allergies,
    height = EXCLUDED.height,
    weight = EXCLUDED.weight,
    family_history = EXCLUDED.family_history,
    lifestyle_sleep_hours = EXCLUDED.lifestyle_sleep_hours,
    lifestyle_activity_level = EXCLUDED.lifestyle_activity_level,
    lifestyle_diet_type = EXCLUDED.lifestyle_diet_type,
    updated_at = EXCLUDED.updated_at`
	allergies, err := marshalNullableList(p.Allergies)
	if err != nil {
		return err
	}
	familyHistory, err := marshalNullableList(p.FamilyHistory)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		p.UserID,
		allergies,
		nullFloat(p.Height),
		nullFloat(p.Weight),
		familyHistory,
		nullFloat(p.LifestyleSleepHours),
		nullStr(p.LifestyleActivityLevel),
		nullStr(p.LifestyleDietType),
		p.UpdatedAt,
	)
	return err
}

func marshalNullableList(list []string) (any, error) {
	if list == nil {
		return nil, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var _ Repo = (*PGRepo)(nil)
