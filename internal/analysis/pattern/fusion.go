package pattern

import "math"

// Fixed fusion policy: the deterministic score carries 70% of the final
// risk, the model-derived anchor 30%.
const (
	FusionDeterministicWeight = 0.7
	FusionModelWeight         = 0.3

	RiskAnchorHigh   = 75.0
	RiskAnchorMedium = 45.0
	RiskAnchorLow    = 20.0
)

// RiskAnchor maps a qualitative model risk level to its numeric anchor.
// Unrecognized values map to the low anchor.
func RiskAnchor(level string) float64 {
	switch level {
	case "high":
		return RiskAnchorHigh
	case "medium":
		return RiskAnchorMedium
	default:
		return RiskAnchorLow
	}
}

// FuseRisk blends the deterministic risk score with the model anchor into a
// rounded integer in [0,100].
func FuseRisk(deterministic float64, riskLevel string) int {
	fused := deterministic*FusionDeterministicWeight + RiskAnchor(riskLevel)*FusionModelWeight
	fused = clamp(fused, 0, 100)
	return int(math.Round(fused))
}
