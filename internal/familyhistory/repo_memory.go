package familyhistory

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Entry // userId -> entries
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Entry)}
}

// Create stores a new entry for a user.
func (r *MemoryRepo) Create(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[entry.UserID] = append(r.data[entry.UserID], entry)
	return nil
}

// GetByID returns an entry by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, entryID string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.data[userID] {
		if entry.ID == entryID {
			return entry, nil
		}
	}
	return Entry{}, ErrNotFound
}

// Update replaces a stored entry.
func (r *MemoryRepo) Update(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.data[entry.UserID]
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes an entry.
func (r *MemoryRepo) Delete(ctx context.Context, userID, entryID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.data[userID]
	for i := range entries {
		if entries[i].ID == entryID {
			r.data[userID] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListByUser returns the user's entries, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Entry(nil), r.data[userID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
