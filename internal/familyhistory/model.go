package familyhistory

import "time"

// Relationships are the accepted family relationship values.
var Relationships = []string{
	"mother", "father", "grandmother", "grandfather", "sibling", "other",
}

// ConfidenceLevels are the accepted confidence values for an entry.
var ConfidenceLevels = []string{
	"confirmed diagnosis", "suspected", "unknown",
}

// Entry is one family-condition record. These rows are per-condition detail
// (relationship, age of onset); the coarse condition list the analysis engine
// matches against lives on the health profile.
type Entry struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ConditionName   string    `json:"condition_name"`
	Relationship    string    `json:"relationship"`
	AgeOfOnset      *int      `json:"age_of_onset,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	ConfidenceLevel string    `json:"confidence_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func validRelationship(s string) bool {
	for _, v := range Relationships {
		if s == v {
			return true
		}
	}
	return false
}

func validConfidence(s string) bool {
	for _, v := range ConfidenceLevels {
		if s == v {
			return true
		}
	}
	return false
}
