package pattern

// Anomaly rule thresholds. Each rule is its own named check so it can be
// tested and tuned in isolation.
const (
	// ZScoreThreshold flags pain statistically extreme against the user's
	// own 90-day baseline.
	ZScoreThreshold = 2.0

	// SlopeThreshold flags a rapidly worsening severity trend.
	SlopeThreshold = 0.3

	// SpikePainMin / SpikeBaselineMax flag a sudden severe spike against a
	// mild baseline.
	SpikePainMin     = 8.0
	SpikeBaselineMax = 4.0

	// NewRegionRecent/NewRegionWindow define the "new region" lookback: the
	// current region counts as new when it is absent from logs[5:30] and at
	// least 5 logs exist.
	NewRegionRecent = 5
	NewRegionWindow = 30
)

// IsZScoreExtreme reports whether the z-score rule fires.
func IsZScoreExtreme(zScore float64) bool {
	return zScore > ZScoreThreshold
}

// IsRapidWorsening reports whether the severity-slope rule fires.
func IsRapidWorsening(slope float64) bool {
	return slope > SlopeThreshold
}

// IsSuddenSpike reports whether current pain spikes against a mild baseline.
func IsSuddenSpike(currentPain, baselinePain float64) bool {
	return currentPain >= SpikePainMin && baselinePain < SpikeBaselineMax
}

// IsNewRegion reports whether the current region has not been logged in the
// recent lookback. logs must be newest first.
func IsNewRegion(logs []Log, region string) bool {
	if region == "" {
		return false
	}
	recent := logs
	if len(recent) > NewRegionWindow {
		recent = recent[:NewRegionWindow]
	}
	if len(recent) < NewRegionRecent {
		return false
	}
	for _, l := range recent[NewRegionRecent:] {
		if l.BodyRegion == region {
			return false
		}
	}
	return true
}

// DetectAnomaly evaluates the disjunction of the four rules.
func DetectAnomaly(m Metrics, logs []Log) bool {
	if IsZScoreExtreme(m.ZScore) {
		return true
	}
	if IsRapidWorsening(m.SeveritySlope) {
		return true
	}
	if IsSuddenSpike(m.CurrentPain, m.AvgPain90) {
		return true
	}
	return IsNewRegion(logs, m.CurrentRegion)
}
