package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"healthlog-backend/internal/analysis/pattern"
	"healthlog-backend/internal/profile"
	"healthlog-backend/internal/shared/metrics"
	"healthlog-backend/internal/shared/telemetry"
)

// fallbackResult is the fixed augmentation output used when the model is
// unavailable, misbehaves, or there is nothing to analyze. The deterministic
// anomaly signal is the only part carried through.
func fallbackResult(anomalyDetected bool) LLMResult {
	return LLMResult{
		Flags:           []Flag{},
		Insights:        []string{},
		AnomalyDetected: anomalyDetected,
		PredictiveRiskAssessment: PredictiveRisk{
			RiskLevel: "low",
			Reasoning: FallbackReasoning,
		},
		FamilyHistoryConnections: []string{},
		Summary:                  FallbackSummary,
	}
}

// augment runs the best-effort model pass. It never returns an error: every
// failure path degrades to the fixed fallback.
func (s *Service) augment(ctx context.Context, userID string, current *pattern.Log, recent []pattern.Log, prof *profile.HealthProfile, m pattern.Metrics, anomalyDetected bool) LLMResult {
	if s.LLM == nil || len(recent) == 0 {
		// No credential configured or nothing to analyze. A normal
		// operating mode, not a failure.
		metrics.IncAugmentFallback()
		return fallbackResult(anomalyDetected)
	}

	raw, err := s.LLM.Generate(ctx, systemPrompt, buildUserPrompt(current, recent, prof, m))
	if err != nil {
		telemetry.Warn("analysis.augment_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		metrics.IncAugmentFallback()
		return fallbackResult(anomalyDetected)
	}

	result, err := parseLLMResult(raw, anomalyDetected)
	if err != nil {
		telemetry.Warn("analysis.augment_invalid", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		metrics.IncAugmentFallback()
		return fallbackResult(anomalyDetected)
	}
	return result
}

type llmPayload struct {
	Flags                    []Flag          `json:"flags"`
	Insights                 []string        `json:"insights"`
	AnomalyDetected          *bool           `json:"anomaly_detected"`
	PredictiveRiskAssessment *PredictiveRisk `json:"predictive_risk_assessment"`
	FamilyHistoryConnections []string        `json:"family_history_connections"`
	Summary                  string          `json:"summary"`
}

// parseLLMResult validates the model's JSON against the expected shape.
// Any deviation that cannot be normalized safely is an error, which the
// caller turns into the fixed fallback.
func parseLLMResult(raw json.RawMessage, anomalyDetected bool) (LLMResult, error) {
	var payload llmPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return LLMResult{}, fmt.Errorf("unmarshal: %w", err)
	}
	if strings.TrimSpace(payload.Summary) == "" {
		return LLMResult{}, fmt.Errorf("missing summary")
	}
	if payload.PredictiveRiskAssessment == nil {
		return LLMResult{}, fmt.Errorf("missing predictive_risk_assessment")
	}
	level := strings.ToLower(strings.TrimSpace(payload.PredictiveRiskAssessment.RiskLevel))
	switch level {
	case "low", "medium", "high":
	default:
		return LLMResult{}, fmt.Errorf("invalid risk_level %q", payload.PredictiveRiskAssessment.RiskLevel)
	}

	flags := make([]Flag, 0, len(payload.Flags))
	for i, f := range payload.Flags {
		if strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.ReasoningSummary) == "" {
			return LLMResult{}, fmt.Errorf("flag %d missing title or reasoning_summary", i)
		}
		f.Severity = normalizeSeverity(f.Severity)
		f.ConfidenceScore = clampInt(f.ConfidenceScore, 0, 100)
		flags = append(flags, f)
	}

	out := LLMResult{
		Flags:           flags,
		Insights:        payload.Insights,
		AnomalyDetected: anomalyDetected,
		PredictiveRiskAssessment: PredictiveRisk{
			RiskLevel: level,
			Reasoning: payload.PredictiveRiskAssessment.Reasoning,
		},
		FamilyHistoryConnections: payload.FamilyHistoryConnections,
		Summary:                  payload.Summary,
	}
	if payload.AnomalyDetected != nil {
		out.AnomalyDetected = *payload.AnomalyDetected
	}
	if out.Insights == nil {
		out.Insights = []string{}
	}
	if out.FamilyHistoryConnections == nil {
		out.FamilyHistoryConnections = []string{}
	}
	return out, nil
}

func normalizeSeverity(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return "high"
	case "medium":
		return "medium"
	default:
		return "low"
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
