package profile

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]HealthProfile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]HealthProfile)}
}

// GetByUser returns the stored profile or ErrNotFound.
func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (HealthProfile, error) {
	if err := ctx.Err(); err != nil {
		return HealthProfile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[userID]
	if !ok {
		return HealthProfile{}, ErrNotFound
	}
	return p, nil
}

// Upsert stores the profile keyed by user.
func (r *MemoryRepo) Upsert(ctx context.Context, p HealthProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.UserID] = p
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
