package pattern

import "testing"

func TestFamilyRelevanceScore(t *testing.T) {
	cases := []struct {
		name    string
		history []string
		region  string
		want    float64
	}{
		{"no history", nil, "head", 0},
		{"migraine matches head", []string{"Migraine"}, "head", FamilyMatchIncrement},
		{"diabetes does not match head", []string{"Diabetes"}, "head", 0},
		{"case insensitive region", []string{"migraine"}, "HEAD", FamilyMatchIncrement},
		{"substring region match", []string{"heart disease"}, "upper_chest", FamilyMatchIncrement},
		{"one increment per condition", []string{"heart disease", "cardiac arrest"}, "chest", 2 * FamilyMatchIncrement},
		{"unrelated condition", []string{"color blindness"}, "head", 0},
		{"unknown region", nil, RegionUnknown, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := familyRelevanceScore(tc.history, tc.region)
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFamilyRelevanceScoreClampsAtOne(t *testing.T) {
	history := []string{"arthritis", "migraine", "heart disease", "cardiac", "hypertension", "cancer"}
	// "neck" matches arthritis and migraine; pile on chest-heavy conditions
	// with a region containing several keywords.
	got := familyRelevanceScore(history, "chest_back_head_neck")
	if got > 1 {
		t.Fatalf("score %v exceeds 1", got)
	}
	if got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
}
