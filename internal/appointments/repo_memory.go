package appointments

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Appointment // userId -> appointments
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Appointment)}
}

// Create stores a new appointment for a user.
func (r *MemoryRepo) Create(ctx context.Context, appt Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[appt.UserID] = append(r.data[appt.UserID], appt)
	return nil
}

// GetByID returns an appointment by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, apptID string) (Appointment, error) {
	if err := ctx.Err(); err != nil {
		return Appointment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, appt := range r.data[userID] {
		if appt.ID == apptID {
			return appt, nil
		}
	}
	return Appointment{}, ErrNotFound
}

// Update replaces a stored appointment.
func (r *MemoryRepo) Update(ctx context.Context, appt Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.data[appt.UserID]
	for i := range entries {
		if entries[i].ID == appt.ID {
			entries[i] = appt
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes an appointment.
func (r *MemoryRepo) Delete(ctx context.Context, userID, apptID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.data[userID]
	for i := range entries {
		if entries[i].ID == apptID {
			r.data[userID] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListByUser returns the user's appointments, most recent visit first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Appointment(nil), r.data[userID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].AppointmentDate.After(out[j].AppointmentDate) })
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
