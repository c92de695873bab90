package familyhistory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for family history entries.
type Service struct {
	Repo Repo
}

// CreateInput captures the fields a caller may set on an entry.
type CreateInput struct {
	UserID          string
	ConditionName   string
	Relationship    string
	AgeOfOnset      *int
	Notes           string
	ConfidenceLevel string
}

// Create validates and stores a new entry.
func (s *Service) Create(ctx context.Context, in CreateInput) (Entry, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return Entry{}, errors.New("user_id is required")
	}
	if strings.TrimSpace(in.ConditionName) == "" {
		return Entry{}, errors.New("condition_name is required")
	}
	relationship := strings.ToLower(strings.TrimSpace(in.Relationship))
	if !validRelationship(relationship) {
		return Entry{}, errors.New("invalid relationship")
	}
	confidence := strings.ToLower(strings.TrimSpace(in.ConfidenceLevel))
	if !validConfidence(confidence) {
		return Entry{}, errors.New("invalid confidence_level")
	}
	if in.AgeOfOnset != nil && (*in.AgeOfOnset < 0 || *in.AgeOfOnset > 120) {
		return Entry{}, errors.New("age_of_onset must be between 0 and 120")
	}
	now := time.Now().UTC()
	entry := Entry{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		ConditionName:   in.ConditionName,
		Relationship:    relationship,
		AgeOfOnset:      in.AgeOfOnset,
		Notes:           in.Notes,
		ConfidenceLevel: confidence,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Get returns one entry scoped to the user.
func (s *Service) Get(ctx context.Context, userID, entryID string) (Entry, error) {
	if userID == "" || entryID == "" {
		return Entry{}, errors.New("user_id and entry id are required")
	}
	return s.Repo.GetByID(ctx, userID, entryID)
}

// Update applies caller-set fields onto an existing entry.
func (s *Service) Update(ctx context.Context, entryID string, in CreateInput) (Entry, error) {
	if entryID == "" {
		return Entry{}, errors.New("entry id is required")
	}
	existing, err := s.Get(ctx, in.UserID, entryID)
	if err != nil {
		return Entry{}, err
	}
	if strings.TrimSpace(in.ConditionName) != "" {
		existing.ConditionName = in.ConditionName
	}
	if strings.TrimSpace(in.Relationship) != "" {
		relationship := strings.ToLower(strings.TrimSpace(in.Relationship))
		if !validRelationship(relationship) {
			return Entry{}, errors.New("invalid relationship")
		}
		existing.Relationship = relationship
	}
	if strings.TrimSpace(in.ConfidenceLevel) != "" {
		confidence := strings.ToLower(strings.TrimSpace(in.ConfidenceLevel))
		if !validConfidence(confidence) {
			return Entry{}, errors.New("invalid confidence_level")
		}
		existing.ConfidenceLevel = confidence
	}
	if in.AgeOfOnset != nil {
		if *in.AgeOfOnset < 0 || *in.AgeOfOnset > 120 {
			return Entry{}, errors.New("age_of_onset must be between 0 and 120")
		}
		existing.AgeOfOnset = in.AgeOfOnset
	}
	existing.Notes = in.Notes
	existing.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Entry{}, err
	}
	return existing, nil
}

// Delete removes an entry scoped to the user.
func (s *Service) Delete(ctx context.Context, userID, entryID string) error {
	if userID == "" || entryID == "" {
		return errors.New("user_id and entry id are required")
	}
	return s.Repo.Delete(ctx, userID, entryID)
}

// List returns the user's entries, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	return s.Repo.ListByUser(ctx, userID)
}
