package logs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WindowDays is the trailing window the analysis engine reads, in days.
const WindowDays = 365

// WindowCap is the maximum number of logs in the engine's working set.
const WindowCap = 365

// Service contains business logic for health logs.
type Service struct {
	Repo Repo
}

// CreateInput captures the fields a caller may set on a log.
type CreateInput struct {
	UserID      string
	Title       string
	Description string
	BodyParts   []string
	Severity    *int
	Date        time.Time
}

// Create validates and stores a new log.
func (s *Service) Create(ctx context.Context, in CreateInput) (HealthLog, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return HealthLog{}, errors.New("user_id is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return HealthLog{}, errors.New("title is required")
	}
	if in.Severity != nil && (*in.Severity < 0 || *in.Severity > 10) {
		return HealthLog{}, errors.New("severity must be between 0 and 10")
	}
	now := time.Now().UTC()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	log := HealthLog{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		BodyParts:   in.BodyParts,
		Severity:    in.Severity,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, log); err != nil {
		return HealthLog{}, err
	}
	return log, nil
}

// Get returns one log scoped to the user.
func (s *Service) Get(ctx context.Context, userID, logID string) (HealthLog, error) {
	if userID == "" || logID == "" {
		return HealthLog{}, errors.New("user_id and log id are required")
	}
	return s.Repo.GetByID(ctx, userID, logID)
}

// Update applies caller-set fields onto an existing log.
func (s *Service) Update(ctx context.Context, logID string, in CreateInput) (HealthLog, error) {
	if logID == "" {
		return HealthLog{}, errors.New("log id is required")
	}
	existing, err := s.Get(ctx, in.UserID, logID)
	if err != nil {
		return HealthLog{}, err
	}
	if strings.TrimSpace(in.Title) != "" {
		existing.Title = in.Title
	}
	existing.Description = in.Description
	if in.BodyParts != nil {
		existing.BodyParts = in.BodyParts
	}
	if in.Severity != nil {
		if *in.Severity < 0 || *in.Severity > 10 {
			return HealthLog{}, errors.New("severity must be between 0 and 10")
		}
		existing.Severity = in.Severity
	}
	if !in.Date.IsZero() {
		existing.Date = in.Date
	}
	existing.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, existing); err != nil {
		return HealthLog{}, err
	}
	return existing, nil
}

// Delete removes a log scoped to the user.
func (s *Service) Delete(ctx context.Context, userID, logID string) error {
	if userID == "" || logID == "" {
		return errors.New("user_id and log id are required")
	}
	return s.Repo.Delete(ctx, userID, logID)
}

// ListWindow returns the engine's working set: trailing 365 days, newest
// first, capped at 365 records.
func (s *Service) ListWindow(ctx context.Context, userID string, now time.Time) ([]HealthLog, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	since := now.AddDate(0, 0, -WindowDays)
	return s.Repo.ListRecent(ctx, userID, since, WindowCap)
}
