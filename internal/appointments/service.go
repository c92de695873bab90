package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for appointments.
type Service struct {
	Repo Repo
}

// CreateInput captures the fields a caller may set on an appointment.
type CreateInput struct {
	UserID           string
	AppointmentDate  time.Time
	DoctorName       string
	Specialty        string
	ReasonForVisit   string
	Diagnosis        string
	DoctorNotes      string
	FollowUpRequired *bool
}

// Create validates and stores a new appointment.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return Appointment{}, errors.New("user_id is required")
	}
	if strings.TrimSpace(in.DoctorName) == "" {
		return Appointment{}, errors.New("doctor_name is required")
	}
	if in.AppointmentDate.IsZero() {
		return Appointment{}, errors.New("appointment_date is required")
	}
	specialty := strings.ToLower(strings.TrimSpace(in.Specialty))
	if !validSpecialty(specialty) {
		return Appointment{}, errors.New("invalid specialty")
	}
	followUp := false
	if in.FollowUpRequired != nil {
		followUp = *in.FollowUpRequired
	}
	now := time.Now().UTC()
	appt := Appointment{
		ID:               uuid.NewString(),
		UserID:           in.UserID,
		AppointmentDate:  in.AppointmentDate,
		DoctorName:       in.DoctorName,
		Specialty:        specialty,
		ReasonForVisit:   in.ReasonForVisit,
		Diagnosis:        in.Diagnosis,
		DoctorNotes:      in.DoctorNotes,
		FollowUpRequired: followUp,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return Appointment{}, err
	}
	return appt, nil
}

// Get returns one appointment scoped to the user.
func (s *Service) Get(ctx context.Context, userID, apptID string) (Appointment, error) {
	if userID == "" || apptID == "" {
		return Appointment{}, errors.New("user_id and appointment id are required")
	}
	return s.Repo.GetByID(ctx, userID, apptID)
}

// Update applies caller-set fields onto an existing appointment.
func (s *Service) Update(ctx context.Context, apptID string, in CreateInput) (Appointment, error) {
	if apptID == "" {
		return Appointment{}, errors.New("appointment id is required")
	}
	existing, err := s.Get(ctx, in.UserID, apptID)
	if err != nil {
		return Appointment{}, err
	}
	if !in.AppointmentDate.IsZero() {
		existing.AppointmentDate = in.AppointmentDate
	}
	if strings.TrimSpace(in.DoctorName) != "" {
		existing.DoctorName = in.DoctorName
	}
	if strings.TrimSpace(in.Specialty) != "" {
		specialty := strings.ToLower(strings.TrimSpace(in.Specialty))
		if !validSpecialty(specialty) {
			return Appointment{}, errors.New("invalid specialty")
		}
		existing.Specialty = specialty
	}
	existing.ReasonForVisit = in.ReasonForVisit
	existing.Diagnosis = in.Diagnosis
	existing.DoctorNotes = in.DoctorNotes
	if in.FollowUpRequired != nil {
		existing.FollowUpRequired = *in.FollowUpRequired
	}
	existing.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Appointment{}, err
	}
	return existing, nil
}

// Delete removes an appointment scoped to the user.
func (s *Service) Delete(ctx context.Context, userID, apptID string) error {
	if userID == "" || apptID == "" {
		return errors.New("user_id and appointment id are required")
	}
	return s.Repo.Delete(ctx, userID, apptID)
}

// List returns the user's appointments, most recent visit first.
func (s *Service) List(ctx context.Context, userID string) ([]Appointment, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	return s.Repo.ListByUser(ctx, userID)
}
