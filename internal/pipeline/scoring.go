package pipeline

import (
	"math"

	"github.com/doclint/doclint/internal/review"
)

// Severity multipliers applied to a matching rule's weight when
// computing the penalty a finding contributes.
var severityMultipliers = map[review.Severity]float64{
	review.Error:   3.0,
	review.Warning: 1.5,
	review.Info:    0.5,
}

// defaultFeedbackWeight is used when a finding's rule type matches no
// enabled rule.
const defaultFeedbackWeight = 5

// maxPenaltyPerWeight scales a rule's weight into the worst-case
// penalty budget for its dimension.
const maxPenaltyPerWeight = 10

// ComputeScores turns aggregated feedback into per-dimension and
// overall scores, all in [0,100]. Dimensions with no enabled rules are
// omitted from the map entirely, never reported as zero.
//
// Per dimension: score = clamp(100 - round(100*actual/max)) where max
// is the sum of rule weights times ten and actual sums each finding's
// matching-rule weight times its severity multiplier.
func ComputeScores(feedback []review.FeedbackItem, enabledRules []review.Rule) (map[review.Dimension]int, int) {
	maxPenalty := make(map[review.Dimension]float64)
	ruleWeight := make(map[review.Dimension]int)
	weightByType := make(map[review.RuleType]int)

	for _, rule := range enabledRules {
		maxPenalty[rule.Dimension] += float64(rule.Weight * maxPenaltyPerWeight)
		ruleWeight[rule.Dimension] += rule.Weight
		if _, seen := weightByType[rule.Type]; !seen {
			weightByType[rule.Type] = rule.Weight
		}
	}

	actualPenalty := make(map[review.Dimension]float64)
	for _, item := range feedback {
		weight, ok := weightByType[item.RuleType]
		if !ok {
			weight = defaultFeedbackWeight
		}
		actualPenalty[item.Dimension] += float64(weight) * severityMultipliers[item.Severity]
	}

	scores := make(map[review.Dimension]int, len(maxPenalty))
	for dim, max := range maxPenalty {
		pct := 0.0
		if max > 0 {
			pct = 100 * actualPenalty[dim] / max
		}
		scores[dim] = clampScore(100 - int(math.Round(pct)))
	}

	return scores, overallScore(scores, ruleWeight)
}

// overallScore weights each dimension by its total rule weight. A zero
// total weight falls back to the unweighted average; no scored
// dimensions at all means a perfect score.
func overallScore(scores map[review.Dimension]int, ruleWeight map[review.Dimension]int) int {
	if len(scores) == 0 {
		return 100
	}

	weightedSum := 0.0
	totalWeight := 0
	for dim, score := range scores {
		weightedSum += float64(score * ruleWeight[dim])
		totalWeight += ruleWeight[dim]
	}

	if totalWeight == 0 {
		sum := 0
		for _, score := range scores {
			sum += score
		}
		return clampScore(int(math.Round(float64(sum) / float64(len(scores)))))
	}

	return clampScore(int(math.Round(weightedSum / float64(totalWeight))))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
