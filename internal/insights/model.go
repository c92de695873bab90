package insights

import "time"

// AIFlag is one persisted pattern observation from an analysis run.
// Rows are append-only: corrections are new rows, never updates.
type AIFlag struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	LogID            *string   `json:"log_id,omitempty"`
	Title            string    `json:"title"`
	ReasoningSummary string    `json:"reasoning_summary"`
	Severity         string    `json:"severity"`
	ConfidenceScore  int       `json:"confidence_score"`
	RiskScore        int       `json:"risk_score"`
	CreatedAt        time.Time `json:"created_at"`
}

// AISummary is the one narrative row written per analysis run.
type AISummary struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	SummaryText    string     `json:"summary_text"`
	DateRangeStart *time.Time `json:"date_range_start,omitempty"`
	DateRangeEnd   *time.Time `json:"date_range_end,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
