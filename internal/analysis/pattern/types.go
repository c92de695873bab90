// Package pattern holds the deterministic core of the pattern analysis
// engine: windowed statistics over normalized symptom logs, the rule-based
// anomaly detector, and risk fusion. Everything here is a pure function of
// its inputs; "now" is always an explicit parameter.
package pattern

import "time"

// RegionUnknown is the sentinel body region for logs without body parts.
const RegionUnknown = "unknown"

// Log is a symptom record reduced to the four fields the pipeline needs,
// decoupled from the storage schema.
type Log struct {
	ID         string    `json:"id"`
	BodyRegion string    `json:"body_region"`
	PainScore  float64   `json:"pain_score"`
	Datetime   time.Time `json:"datetime"`
	Notes      string    `json:"notes"`
}

// Metrics are the deterministic signals computed fresh per invocation.
type Metrics struct {
	SeveritySlope        float64 `json:"severity_slope"`
	FrequencyScore       float64 `json:"frequency_score"`
	ZScore               float64 `json:"z_score"`
	RecurrenceScore      float64 `json:"recurrence_score"`
	FamilyRelevanceScore float64 `json:"family_relevance_score"`
	RiskScore            float64 `json:"risk_score"`
	RegionCount30        int     `json:"region_count_30"`
	RegionCount90        int     `json:"region_count_90"`
	AvgPain90            float64 `json:"avg_pain_90"`
	CurrentRegion        string  `json:"current_region"`
	CurrentPain          float64 `json:"current_pain"`
}
