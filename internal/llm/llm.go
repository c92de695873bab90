package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts generative text providers behind the one capability the
// analysis engine needs: a system instruction plus a user payload in, a JSON
// object out.
type Client interface {
	Generate(ctx context.Context, system, user string) (json.RawMessage, error)
}

// ErrNotConfigured is returned when no provider credential is present.
// Callers treat it like any other generate failure: fall back, don't fail.
var ErrNotConfigured = errors.New("llm not configured")

// Disabled is the client used when no credential is configured.
type Disabled struct{}

// Generate returns ErrNotConfigured.
func (Disabled) Generate(ctx context.Context, system, user string) (json.RawMessage, error) {
	_ = ctx
	_ = system
	_ = user
	return nil, ErrNotConfigured
}
