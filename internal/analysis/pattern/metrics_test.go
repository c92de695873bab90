package pattern

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// makeLogs builds n logs for a region, newest first, one per day ending at
// testNow, with pain scores taken from pains (newest first).
func makeLogs(region string, pains []float64) []Log {
	out := make([]Log, len(pains))
	for i, p := range pains {
		out[i] = Log{
			ID:         region + "-" + string(rune('a'+i)),
			BodyRegion: region,
			PainScore:  p,
			Datetime:   testNow.AddDate(0, 0, -i),
		}
	}
	return out
}

func TestComputeEmptyWorkingSet(t *testing.T) {
	m := Compute(nil, nil, nil, testNow)

	if m.SeveritySlope != 0 || m.FrequencyScore != 0 || m.ZScore != 0 ||
		m.RecurrenceScore != 0 || m.FamilyRelevanceScore != 0 || m.RiskScore != 0 {
		t.Fatalf("expected all-zero metrics for empty input, got %+v", m)
	}
	if m.CurrentRegion != RegionUnknown {
		t.Fatalf("expected region %q, got %q", RegionUnknown, m.CurrentRegion)
	}
	if m.CurrentPain != 0 || m.AvgPain90 != 0 {
		t.Fatalf("expected zero pain values, got current=%v avg=%v", m.CurrentPain, m.AvgPain90)
	}
}

func TestComputeFrequencyZeroWhenNoRegionHistory(t *testing.T) {
	// One old log in another region; current region has no 90-day count.
	logs := []Log{{ID: "l1", BodyRegion: "back", PainScore: 3, Datetime: testNow.AddDate(0, 0, -1)}}
	current := &Log{ID: "cur", BodyRegion: "head", PainScore: 5, Datetime: testNow}

	m := Compute(logs, current, nil, testNow)
	if m.RegionCount90 != 0 {
		t.Fatalf("expected region count 0, got %d", m.RegionCount90)
	}
	if m.FrequencyScore != 0 {
		t.Fatalf("expected frequency 0 with no region history, got %v", m.FrequencyScore)
	}
}

func TestComputeSlopeZeroWithFewerThanTwoPoints(t *testing.T) {
	logs := makeLogs("head", []float64{7})
	m := Compute(logs, &logs[0], nil, testNow)
	if m.SeveritySlope != 0 {
		t.Fatalf("expected slope 0 with one point, got %v", m.SeveritySlope)
	}
}

func TestComputeZScoreZeroWithFewerThanTwoSamples(t *testing.T) {
	logs := makeLogs("head", []float64{9})
	m := Compute(logs, &logs[0], nil, testNow)
	if m.ZScore != 0 {
		t.Fatalf("expected z-score 0 with one sample, got %v", m.ZScore)
	}
}

func TestComputeIdenticalScoresUseEpsilonFloor(t *testing.T) {
	logs := makeLogs("head", []float64{5, 5, 5, 5})
	m := Compute(logs, &logs[0], nil, testNow)

	// current equals the mean exactly, so z must be zero, not NaN.
	if math.IsNaN(m.ZScore) || m.ZScore != 0 {
		t.Fatalf("expected z-score 0 for identical scores, got %v", m.ZScore)
	}
}

func TestComputeRisingScoresHigherThanFlat(t *testing.T) {
	rising := makeLogs("head", []float64{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
	flat := makeLogs("head", []float64{4, 4, 4, 4, 4, 4, 4, 4, 4, 4})

	mRising := Compute(rising, &rising[0], nil, testNow)
	mFlat := Compute(flat, &flat[0], nil, testNow)

	if mRising.SeveritySlope <= 0 {
		t.Fatalf("expected positive slope for rising pain, got %v", mRising.SeveritySlope)
	}
	if mRising.RiskScore <= mFlat.RiskScore {
		t.Fatalf("expected rising risk %v > flat risk %v", mRising.RiskScore, mFlat.RiskScore)
	}
}

func TestComputeRiskWithinBounds(t *testing.T) {
	// Stack every component as high as the inputs allow.
	pains := make([]float64, 30)
	for i := range pains {
		pains[i] = 10 - float64(i)/3
	}
	logs := makeLogs("chest", pains)
	current := &Log{ID: "cur", BodyRegion: "chest", PainScore: 10, Datetime: testNow}
	family := []string{"Heart disease", "Cardiac arrest", "Cancer"}

	m := Compute(logs, current, family, testNow)
	if m.RiskScore < 0 || m.RiskScore > 100 {
		t.Fatalf("risk score %v outside [0,100]", m.RiskScore)
	}
}

func TestComputeIdempotent(t *testing.T) {
	logs := makeLogs("back", []float64{8, 6, 7, 5, 6, 4})
	family := []string{"Arthritis"}

	first := Compute(logs, &logs[0], family, testNow)
	second := Compute(logs, &logs[0], family, testNow)
	if first != second {
		t.Fatalf("expected identical metrics across runs:\n%+v\n%+v", first, second)
	}
}

func TestComputeWindowsExcludeOldLogs(t *testing.T) {
	inside := Log{ID: "in", BodyRegion: "head", PainScore: 6, Datetime: testNow.AddDate(0, 0, -10)}
	outside := Log{ID: "out", BodyRegion: "head", PainScore: 9, Datetime: testNow.AddDate(0, 0, -120)}
	between := Log{ID: "mid", BodyRegion: "head", PainScore: 4, Datetime: testNow.AddDate(0, 0, -60)}

	m := Compute([]Log{inside, between, outside}, &inside, nil, testNow)
	if m.RegionCount90 != 2 {
		t.Fatalf("expected 2 logs in 90-day window, got %d", m.RegionCount90)
	}
	if m.RegionCount30 != 1 {
		t.Fatalf("expected 1 log in 30-day window, got %d", m.RegionCount30)
	}
}

func TestComputeNilCurrentReadsZeroPainUnknownRegion(t *testing.T) {
	logs := makeLogs("neck", []float64{5, 4})
	m := Compute(logs, nil, nil, testNow)
	if m.CurrentRegion != RegionUnknown {
		t.Fatalf("expected unknown region for nil current, got %q", m.CurrentRegion)
	}
	if m.CurrentPain != 0 {
		t.Fatalf("expected pain 0 for nil current, got %v", m.CurrentPain)
	}
	if m.RegionCount90 != 0 {
		t.Fatalf("expected no history for the unknown region, got %d", m.RegionCount90)
	}
}

func TestComputeRecurrenceSaturates(t *testing.T) {
	pains := make([]float64, 15)
	for i := range pains {
		pains[i] = 5
	}
	logs := makeLogs("back", pains)
	m := Compute(logs, &logs[0], nil, testNow)
	if m.RecurrenceScore != 1 {
		t.Fatalf("expected recurrence saturated at 1, got %v", m.RecurrenceScore)
	}
}
