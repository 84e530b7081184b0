// Package classifier routes free-text customer messages to one of the
// shop's business categories. Scoring is a deterministic keyword pass;
// messages the keywords cannot settle escalate to a text-generation
// fallback when one is configured.
package classifier

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultEscalateBelow is the keyword score under which a message is
	// handed to the fallback classifier. Tuned empirically, no derivation.
	DefaultEscalateBelow = 0.3
	// DefaultShortCircuitConfidence is reported for prefilter rejections.
	DefaultShortCircuitConfidence = 0.9
)

type Config struct {
	EscalateBelow          float64
	ShortCircuitConfidence float64
}

type Classifier struct {
	cfg      Config
	fallback *Fallback
}

// New builds a classifier. fb may be nil, in which case low-score messages
// are answered from the keyword pass alone.
func New(cfg Config, fb *Fallback) *Classifier {
	if cfg.EscalateBelow <= 0 {
		cfg.EscalateBelow = DefaultEscalateBelow
	}
	if cfg.ShortCircuitConfidence <= 0 {
		cfg.ShortCircuitConfidence = DefaultShortCircuitConfidence
	}
	return &Classifier{cfg: cfg, fallback: fb}
}

// Classify routes one message. It never returns nil and never fails: every
// degraded path collapses into a CategoryInvalid result.
func (c *Classifier) Classify(ctx context.Context, message string) Result {
	clean := strings.ToLower(strings.TrimSpace(message))

	if shortCircuits(clean) {
		return ShortCircuitResult{
			Conf:  c.cfg.ShortCircuitConfidence,
			Hints: genericSuggestions(),
		}
	}

	scores, matches := Score(clean)
	best, bestScore := bestCategory(scores)

	if bestScore == 0 {
		return NoMatchResult{Hints: categorySuggestions()}
	}

	if bestScore < c.cfg.EscalateBelow && c.fallback != nil {
		return c.fallback.Classify(ctx, message)
	}

	return KeywordResult{
		Label:   best,
		Score:   math.Min(bestScore, 1.0),
		Matches: matches[best],
		Scores:  scores,
	}
}

// Score computes the normalized keyword score of every category for the
// lowercased message, plus the matched keywords per category. Keywords
// longer than 5 characters weigh 1.2, the rest 1.0; the accumulated weight
// is divided by that category's list length, so each category is diluted
// by its own vocabulary size.
func Score(clean string) (map[string]float64, map[string][]string) {
	scores := make(map[string]float64, len(CategoryOrder))
	matches := make(map[string][]string, len(CategoryOrder))

	for _, cat := range CategoryOrder {
		keywords := categoryKeywords[cat]
		var sum float64
		for _, kw := range keywords {
			if strings.Contains(clean, kw) {
				weight := 1.0
				if utf8.RuneCountInString(kw) > 5 {
					weight = 1.2
				}
				sum += weight
				matches[cat] = append(matches[cat], kw)
			}
		}
		scores[cat] = sum / float64(len(keywords))
	}

	return scores, matches
}

// bestCategory walks CategoryOrder so equal scores resolve to the
// earliest category in that order.
func bestCategory(scores map[string]float64) (string, float64) {
	best := CategoryOrder[0]
	bestScore := scores[best]
	for _, cat := range CategoryOrder[1:] {
		if scores[cat] > bestScore {
			best = cat
			bestScore = scores[cat]
		}
	}
	return best, bestScore
}
