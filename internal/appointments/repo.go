package appointments

import (
	"context"
	"errors"
)

// ErrNotFound indicates the appointment does not exist for the user.
var ErrNotFound = errors.New("appointment not found")

// Repo abstracts appointment persistence.
type Repo interface {
	Create(ctx context.Context, appt Appointment) error
	GetByID(ctx context.Context, userID, apptID string) (Appointment, error)
	Update(ctx context.Context, appt Appointment) error
	Delete(ctx context.Context, userID, apptID string) error
	ListByUser(ctx context.Context, userID string) ([]Appointment, error)
}
