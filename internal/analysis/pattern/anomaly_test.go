package pattern

import (
	"testing"
)

func TestIsZScoreExtreme(t *testing.T) {
	if IsZScoreExtreme(2.0) {
		t.Fatal("z-score exactly at threshold must not fire")
	}
	if !IsZScoreExtreme(2.01) {
		t.Fatal("z-score above threshold must fire")
	}
	if IsZScoreExtreme(-3) {
		t.Fatal("negative z-score must not fire")
	}
}

func TestIsRapidWorsening(t *testing.T) {
	if IsRapidWorsening(0.3) {
		t.Fatal("slope exactly at threshold must not fire")
	}
	if !IsRapidWorsening(0.31) {
		t.Fatal("slope above threshold must fire")
	}
}

func TestIsSuddenSpike(t *testing.T) {
	if !IsSuddenSpike(9, 2) {
		t.Fatal("pain 9 against baseline 2 must fire")
	}
	if IsSuddenSpike(7, 2) {
		t.Fatal("pain below the spike minimum must not fire")
	}
	if IsSuddenSpike(9, 4) {
		t.Fatal("baseline at the cap must not fire")
	}
	if !IsSuddenSpike(8, 3.9) {
		t.Fatal("boundary case pain 8 baseline 3.9 must fire")
	}
}

func TestIsNewRegion(t *testing.T) {
	older := func(region string, n int) []Log {
		out := make([]Log, n)
		for i := range out {
			out[i] = Log{ID: "l", BodyRegion: region, Datetime: testNow.AddDate(0, 0, -i)}
		}
		return out
	}

	if IsNewRegion(nil, "head") {
		t.Fatal("too few logs must not fire")
	}
	if IsNewRegion(older("back", 4), "head") {
		t.Fatal("fewer than five logs must not fire")
	}
	if !IsNewRegion(older("back", 10), "head") {
		t.Fatal("region absent from lookback must fire")
	}
	if IsNewRegion(older("head", 10), "head") {
		t.Fatal("region present in lookback must not fire")
	}
	if IsNewRegion(older("back", 10), "") {
		t.Fatal("empty region must not fire")
	}

	// Occurrences inside the first five logs do not count against newness.
	logs := older("back", 10)
	logs[2].BodyRegion = "head"
	if !IsNewRegion(logs, "head") {
		t.Fatal("occurrence within the newest five logs must still count as new")
	}

	// Occurrences past the 30-log window are ignored.
	logs = older("back", 40)
	logs[35].BodyRegion = "head"
	if !IsNewRegion(logs, "head") {
		t.Fatal("occurrence beyond the lookback window must still count as new")
	}
}

func TestDetectAnomalyDisjunction(t *testing.T) {
	quiet := Metrics{ZScore: 0.5, SeveritySlope: 0.1, CurrentPain: 5, AvgPain90: 5, CurrentRegion: "head"}
	history := makeLogs("head", []float64{5, 5, 5, 5, 5, 5})

	if DetectAnomaly(quiet, history) {
		t.Fatal("no rule fires, must not detect")
	}

	byZ := quiet
	byZ.ZScore = 2.5
	if !DetectAnomaly(byZ, history) {
		t.Fatal("z-score rule must detect")
	}

	bySlope := quiet
	bySlope.SeveritySlope = 0.4
	if !DetectAnomaly(bySlope, history) {
		t.Fatal("slope rule must detect")
	}

	bySpike := quiet
	bySpike.CurrentPain = 9
	bySpike.AvgPain90 = 2
	if !DetectAnomaly(bySpike, history) {
		t.Fatal("spike rule must detect")
	}

	byRegion := quiet
	byRegion.CurrentRegion = "abdomen"
	if !DetectAnomaly(byRegion, history) {
		t.Fatal("new-region rule must detect")
	}
}
