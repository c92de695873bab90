package profile

import "time"

// HealthProfile holds per-user background health data. Every field other than
// the user ID is optional; a missing profile row is a valid state.
type HealthProfile struct {
	UserID                 string    `json:"user_id"`
	Allergies              []string  `json:"allergies,omitempty"`
	Height                 *float64  `json:"height,omitempty"`
	Weight                 *float64  `json:"weight,omitempty"`
	FamilyHistory          []string  `json:"family_history,omitempty"`
	LifestyleSleepHours    *float64  `json:"lifestyle_sleep_hours,omitempty"`
	LifestyleActivityLevel string    `json:"lifestyle_activity_level,omitempty"`
	LifestyleDietType      string    `json:"lifestyle_diet_type,omitempty"`
	UpdatedAt              time.Time `json:"updated_at"`
}
