package insights

import "context"

// FlagsRepo defines append-only persistence for AI flags.
type FlagsRepo interface {
	Insert(ctx context.Context, flag AIFlag) error
	ListByUser(ctx context.Context, userID string, limit int) ([]AIFlag, error)
}

// SummariesRepo defines append-only persistence for AI summaries.
type SummariesRepo interface {
	Insert(ctx context.Context, summary AISummary) error
	ListByUser(ctx context.Context, userID string, limit int) ([]AISummary, error)
}
