package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"healthlog-backend/internal/analysis/pattern"
	"healthlog-backend/internal/profile"
)

// promptSampleCap bounds how many recent logs are serialized into the user
// payload.
const promptSampleCap = 30

const systemPrompt = `You are a medical pattern detection assistant.
You analyze symptom logs and identify patterns, anomalies, correlations, and possible inherited risk connections.

You DO NOT diagnose.
You ONLY identify patterns and observational insights.

You must produce structured JSON output.

You must consider:
- severity trends
- recurrence patterns
- anomaly signals
- correlations across body regions
- connections to family health history
- worsening or improving patterns
- predictive risk indicators

Be precise, factual, and cautious.
Avoid alarmist language.`

// buildUserPrompt serializes the profile, the current log, a sample of recent
// logs, and the deterministic metrics into the model's user payload.
func buildUserPrompt(current *pattern.Log, recent []pattern.Log, prof *profile.HealthProfile, m pattern.Metrics) string {
	familyHistory := []string{}
	lifestyle := map[string]any{
		"sleep_hours":    nil,
		"activity_level": nil,
		"diet_type":      nil,
	}
	if prof != nil {
		if prof.FamilyHistory != nil {
			familyHistory = prof.FamilyHistory
		}
		if prof.LifestyleSleepHours != nil {
			lifestyle["sleep_hours"] = *prof.LifestyleSleepHours
		}
		if prof.LifestyleActivityLevel != "" {
			lifestyle["activity_level"] = prof.LifestyleActivityLevel
		}
		if prof.LifestyleDietType != "" {
			lifestyle["diet_type"] = prof.LifestyleDietType
		}
	}

	sample := recent
	if len(sample) > promptSampleCap {
		sample = sample[:promptSampleCap]
	}

	var b strings.Builder
	b.WriteString("\nUser Health Profile:\n")
	fmt.Fprintf(&b, "family_history: %s\n", mustJSON(familyHistory))
	fmt.Fprintf(&b, "lifestyle_metrics: %s\n", mustJSON(lifestyle))
	b.WriteString("\nCurrent Log:\n")
	if current != nil {
		b.WriteString(mustJSONIndent(current))
	} else {
		b.WriteString("null")
	}
	b.WriteString("\n\nRecent Logs (last 90 days, sample):\n")
	b.WriteString(mustJSONIndent(sample))
	b.WriteString("\n\nDeterministic Pattern Metrics:\n")
	fmt.Fprintf(&b, "severity_slope: %v\n", m.SeveritySlope)
	fmt.Fprintf(&b, "frequency_score: %v\n", m.FrequencyScore)
	fmt.Fprintf(&b, "recurrence_score: %v\n", m.RecurrenceScore)
	fmt.Fprintf(&b, "anomaly_z_score: %v\n", m.ZScore)
	fmt.Fprintf(&b, "deterministic_risk_score: %v\n", m.RiskScore)
	b.WriteString(`
OUTPUT FORMAT REQUIRED (valid JSON only, no other text):
{
  "flags": [
    {
      "title": "string",
      "reasoning_summary": "string",
      "severity": "low" | "medium" | "high",
      "confidence_score": 0-100
    }
  ],
  "insights": ["string"],
  "anomaly_detected": boolean,
  "predictive_risk_assessment": {
    "risk_level": "low" | "medium" | "high",
    "reasoning": "string"
  },
  "family_history_connections": ["string"],
  "summary": "string"
}`)
	return b.String()
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

func mustJSONIndent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(data)
}
