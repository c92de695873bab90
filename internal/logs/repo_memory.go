package logs

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]HealthLog // userId -> logs
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]HealthLog),
	}
}

// Create stores a new log for a user.
func (r *MemoryRepo) Create(ctx context.Context, log HealthLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[log.UserID] = append(r.data[log.UserID], log)
	return nil
}

// GetByID returns a log by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, logID string) (HealthLog, error) {
	if err := ctx.Err(); err != nil {
		return HealthLog{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, log := range r.data[userID] {
		if log.ID == logID {
			return log, nil
		}
	}
	return HealthLog{}, ErrNotFound
}

// Update replaces a stored log.
func (r *MemoryRepo) Update(ctx context.Context, log HealthLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.data[log.UserID]
	for i := range entries {
		if entries[i].ID == log.ID {
			entries[i] = log
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes a log.
func (r *MemoryRepo) Delete(ctx context.Context, userID, logID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.data[userID]
	for i := range entries {
		if entries[i].ID == logID {
			r.data[userID] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListRecent returns logs with date >= since, newest first, capped at limit.
func (r *MemoryRepo) ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]HealthLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []HealthLog
	for _, log := range r.data[userID] {
		if !log.Date.Before(since) {
			out = append(out, log)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
