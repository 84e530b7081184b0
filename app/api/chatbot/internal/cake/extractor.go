package cake

import "strings"

// Extract scans a custom cake request against the attribute dictionaries.
// Single-value domains take the last dictionary entry contained in the
// message; multi-value domains collect every hit once, in dictionary
// order. Pure function, deterministic for a given message.
func Extract(message string) AttributeSet {
	clean := strings.ToLower(message)

	set := AttributeSet{
		Occasion: scanLast(clean, occasionTriggers),
		Theme:    scanLast(clean, themeTriggers),
		AgeGroup: scanLast(clean, ageGroupTriggers),
		Gender:   scanLast(clean, genderTriggers),
		Style:    scanLast(clean, styleTriggers),

		Colors:      scanAll(clean, colorTriggers),
		Decorations: scanAll(clean, decorationTriggers),
		Flavors:     scanAll(clean, flavorTriggers),
	}

	for _, branch := range sizeBranches {
		if containsAny(clean, branch.phrases) {
			set.Size = branch.tag
			break
		}
	}

	return set
}

func scanLast(clean string, dict []trigger) string {
	var tag string
	for _, t := range dict {
		if strings.Contains(clean, t.word) {
			tag = t.tag
		}
	}
	return tag
}

func scanAll(clean string, dict []trigger) []string {
	var tags []string
	seen := make(map[string]bool, len(dict))
	for _, t := range dict {
		if strings.Contains(clean, t.word) && !seen[t.tag] {
			seen[t.tag] = true
			tags = append(tags, t.tag)
		}
	}
	return tags
}

func containsAny(clean string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(clean, p) {
			return true
		}
	}
	return false
}
