package profile

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no profile row exists for the user.
// Callers treat this as "no profile data", not a failure.
var ErrNotFound = errors.New("profile not found")

// Repo defines persistence operations for health profiles.
type Repo interface {
	GetByUser(ctx context.Context, userID string) (HealthProfile, error)
	Upsert(ctx context.Context, p HealthProfile) error
}
