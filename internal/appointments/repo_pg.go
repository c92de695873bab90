package appointments

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new appointment.
func (r *PGRepo) Create(ctx context.Context, appt Appointment) error {
	const query = `
INSERT INTO appointments (id, user_id, appointment_date, doctor_name, specialty,
    reason_for_visit, diagnosis, doctor_notes, follow_up_required, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.DB.ExecContext(ctx, query,
		appt.ID,
		appt.UserID,
		appt.AppointmentDate,
		appt.DoctorName,
		appt.Specialty,
		nullString(appt.ReasonForVisit),
		nullString(appt.Diagnosis),
		nullString(appt.DoctorNotes),
		appt.FollowUpRequired,
		appt.CreatedAt,
		appt.UpdatedAt,
	)
	return err
}

// GetByID returns an appointment by ID scoped to the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, apptID string) (Appointment, error) {
	const query = `
SELECT id, user_id, appointment_date, doctor_name, specialty,
       reason_for_visit, diagnosis, doctor_notes, follow_up_required, created_at, updated_at
FROM appointments
WHERE id = $1 AND user_id = $2
LIMIT 1`
	appt, err := scanAppointment(r.DB.QueryRowContext(ctx, query, apptID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Appointment{}, ErrNotFound
		}
		return Appointment{}, err
	}
	return appt, nil
}

// Update rewrites the mutable fields of an appointment.
func (r *PGRepo) Update(ctx context.Context, appt Appointment) error {
	const query = `
UPDATE appointments
SET appointment_date = $3, doctor_name = $4, specialty = $5, reason_for_visit = $6,
    diagnosis = $7, doctor_notes = $8, follow_up_required = $9, updated_at = $10
WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		appt.ID,
		appt.UserID,
		appt.AppointmentDate,
		appt.DoctorName,
		appt.Specialty,
		nullString(appt.ReasonForVisit),
		nullString(appt.Diagnosis),
		nullString(appt.DoctorNotes),
		appt.FollowUpRequired,
		appt.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an appointment scoped to the user.
func (r *PGRepo) Delete(ctx context.Context, userID, apptID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1 AND user_id = $2`, apptID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns the user's appointments, most recent visit first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	const query = `
SELECT id, user_id, appointment_date, doctor_name, specialty,
       reason_for_visit, diagnosis, doctor_notes, follow_up_required, created_at, updated_at
FROM appointments
WHERE user_id = $1
ORDER BY appointment_date DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, appt)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (Appointment, error) {
	var appt Appointment
	var reason, diagnosis, notes sql.NullString
	if err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.AppointmentDate,
		&appt.DoctorName,
		&appt.Specialty,
		&reason,
		&diagnosis,
		&notes,
		&appt.FollowUpRequired,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	); err != nil {
		return Appointment{}, err
	}
	appt.ReasonForVisit = reason.String
	appt.Diagnosis = diagnosis.String
	appt.DoctorNotes = notes.String
	return appt, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var _ Repo = (*PGRepo)(nil)
