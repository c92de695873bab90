package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"healthlog-backend/internal/analysis/pattern"
)

type staticLLM struct {
	resp string
	err  error
}

func (s staticLLM) Generate(ctx context.Context, system, user string) (json.RawMessage, error) {
	_ = ctx
	_ = system
	_ = user
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.resp), nil
}

const validLLMResponse = `{
	"flags": [{"title": "Recurring headaches", "reasoning_summary": "Pain in head region logged repeatedly", "severity": "medium", "confidence_score": 80}],
	"insights": ["Head pain recurs weekly"],
	"anomaly_detected": true,
	"predictive_risk_assessment": {"risk_level": "medium", "reasoning": "Worsening trend"},
	"family_history_connections": ["Migraine history may relate"],
	"summary": "Recurring head pain with a worsening trend."
}`

func someRecent() []pattern.Log {
	return []pattern.Log{{ID: "l1", BodyRegion: "head", PainScore: 5}}
}

func TestAugmentNilClientFallsBack(t *testing.T) {
	svc := &Service{}
	got := svc.augment(context.Background(), "u1", nil, someRecent(), nil, pattern.Metrics{}, true)

	if got.Summary != FallbackSummary {
		t.Fatalf("expected fallback summary, got %q", got.Summary)
	}
	if !got.AnomalyDetected {
		t.Fatal("fallback must carry the deterministic anomaly signal")
	}
	if got.PredictiveRiskAssessment.RiskLevel != "low" {
		t.Fatalf("fallback risk level: got %q", got.PredictiveRiskAssessment.RiskLevel)
	}
	if got.PredictiveRiskAssessment.Reasoning != FallbackReasoning {
		t.Fatalf("fallback reasoning: got %q", got.PredictiveRiskAssessment.Reasoning)
	}
	if got.Flags == nil || got.Insights == nil || got.FamilyHistoryConnections == nil {
		t.Fatal("fallback slices must be empty, not nil")
	}
}

func TestAugmentEmptyWorkingSetFallsBack(t *testing.T) {
	svc := &Service{LLM: staticLLM{resp: validLLMResponse}}
	got := svc.augment(context.Background(), "u1", nil, nil, nil, pattern.Metrics{}, false)
	if got.Summary != FallbackSummary {
		t.Fatalf("expected fallback with no recent logs, got %q", got.Summary)
	}
}

func TestAugmentGenerateErrorFallsBack(t *testing.T) {
	svc := &Service{LLM: staticLLM{err: errors.New("upstream 500")}}
	got := svc.augment(context.Background(), "u1", nil, someRecent(), nil, pattern.Metrics{}, false)
	if got.Summary != FallbackSummary {
		t.Fatalf("expected fallback on generate error, got %q", got.Summary)
	}
	if got.AnomalyDetected {
		t.Fatal("fallback anomaly must follow the deterministic value")
	}
}

func TestAugmentValidResponse(t *testing.T) {
	svc := &Service{LLM: staticLLM{resp: validLLMResponse}}
	got := svc.augment(context.Background(), "u1", nil, someRecent(), nil, pattern.Metrics{}, false)

	if got.Summary != "Recurring head pain with a worsening trend." {
		t.Fatalf("unexpected summary %q", got.Summary)
	}
	if len(got.Flags) != 1 || got.Flags[0].Severity != "medium" || got.Flags[0].ConfidenceScore != 80 {
		t.Fatalf("unexpected flags %+v", got.Flags)
	}
	if !got.AnomalyDetected {
		t.Fatal("model anomaly value must override the deterministic one")
	}
	if got.PredictiveRiskAssessment.RiskLevel != "medium" {
		t.Fatalf("risk level: got %q", got.PredictiveRiskAssessment.RiskLevel)
	}
}

func TestParseLLMResultRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `insights ahead`},
		{"missing summary", `{"predictive_risk_assessment": {"risk_level": "low"}}`},
		{"missing risk assessment", `{"summary": "ok"}`},
		{"invalid risk level", `{"summary": "ok", "predictive_risk_assessment": {"risk_level": "severe"}}`},
		{"flag missing title", `{"summary": "ok", "predictive_risk_assessment": {"risk_level": "low"}, "flags": [{"reasoning_summary": "r"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseLLMResult(json.RawMessage(tc.raw), false); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseLLMResultNormalizes(t *testing.T) {
	raw := `{
		"summary": "ok",
		"predictive_risk_assessment": {"risk_level": " HIGH ", "reasoning": "r"},
		"flags": [{"title": "t", "reasoning_summary": "r", "severity": "critical", "confidence_score": 250}]
	}`
	got, err := parseLLMResult(json.RawMessage(raw), true)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.PredictiveRiskAssessment.RiskLevel != "high" {
		t.Fatalf("risk level not normalized: %q", got.PredictiveRiskAssessment.RiskLevel)
	}
	if got.Flags[0].Severity != "low" {
		t.Fatalf("unknown severity must normalize to low, got %q", got.Flags[0].Severity)
	}
	if got.Flags[0].ConfidenceScore != 100 {
		t.Fatalf("confidence must clamp to 100, got %d", got.Flags[0].ConfidenceScore)
	}
	if !got.AnomalyDetected {
		t.Fatal("missing anomaly_detected must fall back to the deterministic value")
	}
	if got.Insights == nil || got.FamilyHistoryConnections == nil {
		t.Fatal("absent arrays must decode to empty slices")
	}
}
