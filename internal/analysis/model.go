package analysis

// Flag is one model-generated pattern observation.
type Flag struct {
	Title            string `json:"title"`
	ReasoningSummary string `json:"reasoning_summary"`
	Severity         string `json:"severity"`
	ConfidenceScore  int    `json:"confidence_score"`
}

// PredictiveRisk is the model's qualitative risk assessment.
type PredictiveRisk struct {
	RiskLevel string `json:"risk_level"`
	Reasoning string `json:"reasoning"`
}

// LLMResult is the validated output of the insight augmenter, whether it came
// from the model or from the fixed fallback.
type LLMResult struct {
	Flags                    []Flag         `json:"flags"`
	Insights                 []string       `json:"insights"`
	AnomalyDetected          bool           `json:"anomaly_detected"`
	PredictiveRiskAssessment PredictiveRisk `json:"predictive_risk_assessment"`
	FamilyHistoryConnections []string       `json:"family_history_connections"`
	Summary                  string         `json:"summary"`
}

// Result is the full analysis response returned to the caller.
type Result struct {
	Flags                    []Flag   `json:"flags"`
	Insights                 []string `json:"insights"`
	RiskScore                int      `json:"risk_score"`
	Summary                  string   `json:"summary"`
	AnomalyDetected          bool     `json:"anomaly_detected"`
	FamilyHistoryConnections []string `json:"family_history_connections"`
}

// Fixed fallback strings used whenever augmentation is unavailable.
const (
	FallbackSummary   = "Pattern analysis completed. No significant patterns identified in the available data."
	FallbackReasoning = "Insufficient data for assessment."
)
