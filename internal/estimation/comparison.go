package estimation

import "math"

// BudgetVarianceThreshold is the variance, in percent of the target midpoint, tolerated either way.
const BudgetVarianceThreshold = 15.0

type BudgetStatus string

const (
	BudgetUnder  BudgetStatus = "under"
	BudgetWithin BudgetStatus = "within"
	BudgetOver   BudgetStatus = "over"
)

// BudgetComparison positions an estimated budget against the owner's budget envelope.
type BudgetComparison struct {
	Status BudgetStatus `json:"status"`
	// Variance is the gap between midpoints in percent of the target midpoint.
	Variance          int     `json:"variance"`
	Recommendation    string  `json:"recommendation"`
	EstimatedMidpoint float64 `json:"estimatedMidpoint"`
	TargetMidpoint    float64 `json:"targetMidpoint"`
}

// CompareBudgetWithTarget classifies the estimate as under, within or over the target
// using a ±15% variance of midpoints.
func CompareBudgetWithTarget(estimated, target EstimationRange) BudgetComparison {
	res := BudgetComparison{
		EstimatedMidpoint: estimated.Midpoint(),
		TargetMidpoint:    target.Midpoint(),
	}
	if res.TargetMidpoint <= 0 {
		res.Status = BudgetWithin
		res.Recommendation = "No budget envelope was provided: the estimate cannot be compared."
		return res
	}

	variance := (res.EstimatedMidpoint - res.TargetMidpoint) / res.TargetMidpoint * 100
	res.Variance = int(math.Round(variance))
	switch {
	case variance < -BudgetVarianceThreshold:
		res.Status = BudgetUnder
		res.Recommendation = "The budget is generous. A higher finish level or additional work can be considered."
	case variance > BudgetVarianceThreshold:
		res.Status = BudgetOver
		res.Recommendation = "The estimate exceeds the budget envelope. Prioritize lots or lower the finish level."
	default:
		res.Status = BudgetWithin
		res.Recommendation = "The estimate is consistent with the budget. Keep a safety margin of 10-15%."
	}
	return res
}
