package pattern

import "strings"

// FamilyMatchIncrement is added once per matched condition.
const FamilyMatchIncrement = 0.25

// familyHistoryRegions maps condition keywords to body-region substrings.
// Matching is deliberately coarse substring containment on lower-cased text,
// not anything semantic; tests depend on the exact table.
var familyHistoryRegions = map[string][]string{
	"arthritis":    {"left_arm", "right_arm", "left_leg", "right_leg", "back", "neck"},
	"migraine":     {"head", "neck"},
	"diabetes":     {"left_leg", "right_leg", "abdomen"},
	"heart":        {"chest", "back"},
	"cardiac":      {"chest"},
	"hypertension": {"chest", "head"},
	"asthma":       {"chest"},
	"cancer":       {"chest", "abdomen", "back", "head"},
}

// familyRelevanceScore scores how strongly the user's family history bears on
// the current region, in [0,1].
func familyRelevanceScore(familyHistory []string, currentRegion string) float64 {
	if len(familyHistory) == 0 {
		return 0
	}
	haystack := strings.ToLower(strings.Join(familyHistory, " "))
	regionLower := strings.ToLower(currentRegion)

	score := 0.0
	for condition, regions := range familyHistoryRegions {
		if !strings.Contains(haystack, condition) {
			continue
		}
		for _, r := range regions {
			if strings.Contains(regionLower, r) {
				score += FamilyMatchIncrement
				break
			}
		}
	}
	return clamp01(score)
}
