package logs

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a log does not exist for the user.
var ErrNotFound = errors.New("log not found")

// Repo defines persistence operations for health logs.
type Repo interface {
	Create(ctx context.Context, log HealthLog) error
	GetByID(ctx context.Context, userID, logID string) (HealthLog, error)
	Update(ctx context.Context, log HealthLog) error
	Delete(ctx context.Context, userID, logID string) error
	// ListRecent returns the user's logs with date >= since, newest first,
	// capped at limit. This is the read contract the analysis engine runs on.
	ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]HealthLog, error)
}
