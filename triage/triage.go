// Package triage assigns priorities to service requests using keyword
// heuristics. It is the deterministic fallback behind the classifier
// gateway: no I/O, total, never fails.
package triage

import (
	"fmt"
	"math"
	"strings"

	"go-lifeline/types"
)

const (
	maxScore = 0.99

	urgentBaseScore   = 0.90
	urgentPerKeyword  = 0.02
	highBaseScore     = 0.70
	highPerKeyword    = 0.05
	foodCategoryScore = 0.75
	mediumScore       = 0.60
	lowScore          = 0.40
)

// Classify maps a request's text and category to a priority. Rules are
// evaluated in order; the first match wins:
//
//  1. any emergency keyword        -> URGENT
//  2. high-priority keyword, or
//     MEDICAL/EMERGENCY category   -> HIGH
//  3. FOOD category                -> HIGH
//  4. EDUCATION/LEGAL category     -> MEDIUM
//  5. anything else                -> LOW
func Classify(title, description string, category types.Category) types.ClassificationResult {
	text := strings.ToLower(title + " " + description)

	emergencyHits := countKeywords(text, emergencyKeywords)
	highHits := countKeywords(text, highPriorityKeywords)

	switch {
	case emergencyHits > 0:
		return newResult(
			types.PriorityUrgent,
			urgentBaseScore+urgentPerKeyword*float64(emergencyHits),
			fmt.Sprintf("Contains %d emergency keyword(s)", emergencyHits),
			category,
		)
	case highHits > 0 || category == types.CategoryMedical || category == types.CategoryEmergency:
		return newResult(
			types.PriorityHigh,
			highBaseScore+highPerKeyword*float64(highHits),
			fmt.Sprintf("Contains %d high-priority keyword(s)", highHits),
			category,
		)
	case category == types.CategoryFood:
		return newResult(types.PriorityHigh, foodCategoryScore, "Category-based priority: FOOD", category)
	case category == types.CategoryEducation || category == types.CategoryLegal:
		return newResult(types.PriorityMedium, mediumScore, "Category-based priority: "+string(category), category)
	default:
		return newResult(types.PriorityLow, lowScore, "Category-based priority: "+string(category), category)
	}
}

// countKeywords counts how many keywords appear in text. Each keyword
// counts at most once; matching is substring containment, not word
// boundaries, so "fires" still matches "fire".
func countKeywords(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}

func newResult(priority types.Priority, score float64, reason string, category types.Category) types.ClassificationResult {
	return types.ClassificationResult{
		Priority:          priority,
		Score:             roundScore(score),
		Reason:            reason,
		SuggestedCategory: category,
	}
}

// roundScore clamps to the 0.99 ceiling and rounds to 2 decimals. The cap
// is deliberate: fallback scores must never read as full certainty.
func roundScore(score float64) float64 {
	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return math.Round(score*100) / 100
}
