package estimation

const (
	BaseConfidence = 50
	MinConfidence  = 20
	MaxConfidence  = 95

	livingAreaBonus     = 10
	yearBuiltBonus      = 5
	postalCodeBonus     = 5
	finishLevelBonus    = 5
	budgetEnvelopeBonus = 5

	pointsPerLotBudget  = 2
	maxLotBudgetBonus   = 10
	maxDescriptionBonus = 5

	heritagePenalty = 10
	// buildingAgePenalty applies when the age factor exceeds buildingAgePenaltyThreshold percent.
	buildingAgePenalty          = 5
	buildingAgePenaltyThreshold = 15
)

// Codes of the factors emitted by the standard adjustments.
const (
	FactorRegional     = "regional"
	FactorPropertyType = "property_type"
	FactorFinishLevel  = "finish_level"
	FactorBuildingAge  = "building_age"
	FactorHeritage     = "heritage"
	FactorCondo        = "condo"
	FactorUrgency      = "urgency"
)

// ScoreConfidence rates how much reliable input the estimation is based on.
// The score of a project with lots is always within [MinConfidence, MaxConfidence].
func ScoreConfidence(project Project, factors []EstimationFactor) int {
	score := BaseConfidence

	if p := project.Property; p != nil {
		if _, ok := p.LivingArea(); ok {
			score += livingAreaBonus
		}
		if _, ok := p.ConstructionYear(); ok {
			score += yearBuiltBonus
		}
		if _, ok := p.Department(); ok {
			score += postalCodeBonus
		}
	}
	if w := project.WorkProject; w != nil {
		if w.FinishLevel.Valid() {
			score += finishLevelBonus
		}
		if w.BudgetEnvelope != nil {
			score += budgetEnvelopeBonus
		}
	}

	withBudget, withDescription := 0, 0
	for _, lot := range project.SelectedLots {
		if lot.EstimatedBudget != nil && lot.EstimatedBudget.valid() {
			withBudget++
		}
		if lot.Description != "" {
			withDescription++
		}
	}
	score += min(withBudget*pointsPerLotBudget, maxLotBudgetBonus)
	score += min(withDescription, maxDescriptionBonus)

	for _, f := range factors {
		switch {
		case f.Code == FactorHeritage:
			score -= heritagePenalty
		case f.Code == FactorBuildingAge && f.Percentage > buildingAgePenaltyThreshold:
			score -= buildingAgePenalty
		}
	}

	return max(MinConfidence, min(score, MaxConfidence))
}
