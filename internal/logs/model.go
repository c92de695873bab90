package logs

import "time"

// HealthLog is a raw symptom journal entry as persisted.
// BodyParts[0], when present, is the primary body region.
type HealthLog struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	BodyParts   []string  `json:"body_parts"`
	Severity    *int      `json:"severity,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
