package pattern

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Fixed scoring policy. The five weights sum to 100; they are tuned values,
// not derived, and tests pin them.
const (
	WeightSlope      = 25.0
	WeightFrequency  = 20.0
	WeightZScore     = 20.0
	WeightRecurrence = 15.0
	WeightFamily     = 20.0

	// SlopeNormOffset/SlopeNormWindow map a raw severity slope into [0,1]:
	// clamp((slope + offset) / window, 0, 1).
	SlopeNormOffset = 0.5
	SlopeNormWindow = 1.0

	// ZScoreDivisor normalizes the z-score contribution: clamp(z/3, 0, 1).
	ZScoreDivisor = 3.0

	// RecurrenceDivisor saturates recurrence at 10 occurrences in 30 days.
	RecurrenceDivisor = 10.0

	// StdDevEpsilon floors the sample stddev when all scores are identical.
	StdDevEpsilon = 0.001
)

const (
	windowDays90 = 90
	windowDays30 = 30
)

// Compute derives the deterministic metrics for a working set of logs,
// newest first. A nil current means no anchor log resolved; its region and
// pain read as unknown and zero. familyHistory may be nil (no profile). now
// anchors the 30/90-day windows.
func Compute(logs []Log, current *Log, familyHistory []string, now time.Time) Metrics {
	if len(logs) == 0 && current == nil {
		// Brand-new user: every signal is zero, including the risk score.
		return Metrics{CurrentRegion: RegionUnknown}
	}

	cutoff90 := now.AddDate(0, 0, -windowDays90)
	cutoff30 := now.AddDate(0, 0, -windowDays30)

	var logs90, logs30 []Log
	for _, l := range logs {
		if !l.Datetime.Before(cutoff90) {
			logs90 = append(logs90, l)
		}
		if !l.Datetime.Before(cutoff30) {
			logs30 = append(logs30, l)
		}
	}

	currentRegion := RegionUnknown
	if current != nil {
		currentRegion = current.BodyRegion
	}

	regionCount90 := countRegion(logs90, currentRegion)
	regionCount30 := countRegion(logs30, currentRegion)

	frequency := 0.0
	if regionCount90 > 0 {
		// Guarded explicitly: a user's first log for a region has no
		// 90-day history to divide by.
		frequency = clamp01(float64(regionCount30) / float64(regionCount90))
	}

	slope := severitySlope(logs90, currentRegion)

	painScores := make([]float64, 0, len(logs90))
	for _, l := range logs90 {
		painScores = append(painScores, l.PainScore)
	}
	avgPain := 0.0
	if len(painScores) > 0 {
		avgPain = stat.Mean(painScores, nil)
	}

	currentPain := 0.0
	if current != nil {
		currentPain = current.PainScore
	}

	zScore := 0.0
	if len(painScores) >= 2 {
		stdPain := stat.StdDev(painScores, nil)
		if stdPain < StdDevEpsilon {
			stdPain = StdDevEpsilon
		}
		zScore = (currentPain - avgPain) / stdPain
	}

	recurrence := clamp01(float64(regionCount30) / RecurrenceDivisor)
	familyRelevance := familyRelevanceScore(familyHistory, currentRegion)

	slopeNorm := clamp01((slope + SlopeNormOffset) / SlopeNormWindow)
	risk := slopeNorm*WeightSlope +
		frequency*WeightFrequency +
		clamp01(zScore/ZScoreDivisor)*WeightZScore +
		recurrence*WeightRecurrence +
		familyRelevance*WeightFamily
	risk = clamp(risk, 0, 100)

	return Metrics{
		SeveritySlope:        slope,
		FrequencyScore:       frequency,
		ZScore:               zScore,
		RecurrenceScore:      recurrence,
		FamilyRelevanceScore: familyRelevance,
		RiskScore:            risk,
		RegionCount30:        regionCount30,
		RegionCount90:        regionCount90,
		AvgPain90:            avgPain,
		CurrentRegion:        currentRegion,
		CurrentPain:          currentPain,
	}
}

// severitySlope is the OLS slope of pain score against time (epoch seconds)
// over the 90-day logs matching region. Degenerate inputs (fewer than two
// points, identical timestamps) yield 0.
func severitySlope(logs90 []Log, region string) float64 {
	var xs, ys []float64
	for _, l := range logs90 {
		if l.BodyRegion != region {
			continue
		}
		xs = append(xs, float64(l.Datetime.Unix()))
		ys = append(ys, l.PainScore)
	}
	if len(xs) < 2 {
		return 0
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0
	}
	return slope
}

func countRegion(logs []Log, region string) int {
	n := 0
	for _, l := range logs {
		if l.BodyRegion == region {
			n++
		}
	}
	return n
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
