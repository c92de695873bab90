package insights

import (
	"context"
	"sync"
)

// MemoryFlagsRepo is an in-memory implementation of FlagsRepo.
type MemoryFlagsRepo struct {
	mu   sync.RWMutex
	data map[string][]AIFlag
}

// NewMemoryFlagsRepo constructs a MemoryFlagsRepo.
func NewMemoryFlagsRepo() *MemoryFlagsRepo {
	return &MemoryFlagsRepo{data: make(map[string][]AIFlag)}
}

// Insert appends a flag.
func (r *MemoryFlagsRepo) Insert(ctx context.Context, flag AIFlag) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[flag.UserID] = append(r.data[flag.UserID], flag)
	return nil
}

// ListByUser returns the user's flags, newest first.
func (r *MemoryFlagsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]AIFlag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := r.data[userID]
	out := make([]AIFlag, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// MemorySummariesRepo is an in-memory implementation of SummariesRepo.
type MemorySummariesRepo struct {
	mu   sync.RWMutex
	data map[string][]AISummary
}

// NewMemorySummariesRepo constructs a MemorySummariesRepo.
func NewMemorySummariesRepo() *MemorySummariesRepo {
	return &MemorySummariesRepo{data: make(map[string][]AISummary)}
}

// Insert appends a summary.
func (r *MemorySummariesRepo) Insert(ctx context.Context, summary AISummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[summary.UserID] = append(r.data[summary.UserID], summary)
	return nil
}

// ListByUser returns the user's summaries, newest first.
func (r *MemorySummariesRepo) ListByUser(ctx context.Context, userID string, limit int) ([]AISummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := r.data[userID]
	out := make([]AISummary, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

var (
	_ FlagsRepo     = (*MemoryFlagsRepo)(nil)
	_ SummariesRepo = (*MemorySummariesRepo)(nil)
)
