package assessment

import (
	"math"

	"healthme-backend/internal/model"
)

// Classify derives both classification tiers from a dimension score map.
//
// The total score is the unweighted mean of all dimension scores. Risk and
// proficiency are evaluated against the unrounded mean, so exact boundary
// values land in the upper tier: 70.0 is Proficient and Low risk, 50.0 is
// Basic and Moderate risk. TotalScore itself is reported to one decimal
// place. Total over [0,100]; no error cases.
func Classify(scores model.DimensionScores) model.Classification {
	var sum float64
	var n int
	for _, dim := range model.Dimensions() {
		score, ok := scores[dim]
		if !ok {
			continue
		}
		sum += float64(score)
		n++
	}

	var mean float64
	if n > 0 {
		mean = sum / float64(n)
	}

	var risk model.RiskLevel
	switch {
	case mean < 50:
		risk = model.RiskHigh
	case mean < 70:
		risk = model.RiskModerate
	default:
		risk = model.RiskLow
	}

	var level model.ProficiencyLevel
	switch {
	case mean >= 80:
		level = model.LevelAdvanced
	case mean >= 70:
		level = model.LevelProficient
	case mean >= 60:
		level = model.LevelIntermediate
	case mean >= 50:
		level = model.LevelBasic
	default:
		level = model.LevelBeginner
	}

	return model.Classification{
		TotalScore: roundTo1(mean),
		RiskLevel:  risk,
		Level:      level,
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
