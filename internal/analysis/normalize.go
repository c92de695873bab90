package analysis

import (
	"healthlog-backend/internal/analysis/pattern"
	"healthlog-backend/internal/logs"
)

// normalizeLog maps a raw journal entry onto the analysis record. Missing
// fields degrade to safe defaults; nothing here can fail.
func normalizeLog(raw logs.HealthLog) pattern.Log {
	region := pattern.RegionUnknown
	if len(raw.BodyParts) > 0 {
		region = raw.BodyParts[0]
	}
	pain := 0.0
	if raw.Severity != nil {
		pain = float64(*raw.Severity)
	}
	return pattern.Log{
		ID:         raw.ID,
		BodyRegion: region,
		PainScore:  pain,
		Datetime:   raw.Date,
		Notes:      raw.Description,
	}
}

// normalizeLogs is a 1:1 mapping preserving order and cardinality.
func normalizeLogs(raw []logs.HealthLog) []pattern.Log {
	out := make([]pattern.Log, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalizeLog(r))
	}
	return out
}
