package familyhistory

import (
	"context"
	"errors"
)

// ErrNotFound indicates the entry does not exist for the user.
var ErrNotFound = errors.New("family history entry not found")

// Repo abstracts family history persistence.
type Repo interface {
	Create(ctx context.Context, entry Entry) error
	GetByID(ctx context.Context, userID, entryID string) (Entry, error)
	Update(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, userID, entryID string) error
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
}
