package analysis

import "errors"

// ErrUserIDRequired is the client error for a missing user id.
var ErrUserIDRequired = errors.New("user_id is required")

// UpstreamError marks a log/profile store read failure: fatal for the
// invocation, surfaced to the caller with the underlying message.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
