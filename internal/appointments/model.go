package appointments

import "time"

// Specialties are the accepted doctor specialty values.
var Specialties = []string{
	"general practitioner",
	"cardiologist",
	"neurologist",
	"orthopedist",
	"dermatologist",
	"other",
}

// Appointment is a doctor-visit record as persisted.
type Appointment struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	AppointmentDate  time.Time `json:"appointment_date"`
	DoctorName       string    `json:"doctor_name"`
	Specialty        string    `json:"specialty"`
	ReasonForVisit   string    `json:"reason_for_visit,omitempty"`
	Diagnosis        string    `json:"diagnosis,omitempty"`
	DoctorNotes      string    `json:"doctor_notes,omitempty"`
	FollowUpRequired bool      `json:"follow_up_required"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func validSpecialty(s string) bool {
	for _, v := range Specialties {
		if s == v {
			return true
		}
	}
	return false
}
