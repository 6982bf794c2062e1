package assessment

import (
	"math"

	"healthme-backend/internal/model"
)

// Aggregate computes class-level statistics over a profile collection.
//
// An empty collection yields model.ErrEmptyInput: a class mean over zero
// students is undefined and failing loudly beats serving NaN. Inputs are not
// mutated. Per-dimension averages are rounded to integers; the overall
// average of total scores is reported to one decimal place.
func Aggregate(profiles []model.StudentProfile) (model.ClassSummary, error) {
	if len(profiles) == 0 {
		return model.ClassSummary{}, model.ErrEmptyInput
	}

	n := float64(len(profiles))
	dimSums := make(map[model.Dimension]float64)
	var totalSum float64
	atRisk := 0

	for _, p := range profiles {
		for _, dim := range model.Dimensions() {
			dimSums[dim] += float64(p.Scores[dim])
		}
		totalSum += p.TotalScore
		if p.RiskLevel == model.RiskHigh {
			atRisk++
		}
	}

	averages := make(model.DimensionScores, len(dimSums))
	for _, dim := range model.Dimensions() {
		averages[dim] = int(math.Round(dimSums[dim] / n))
	}

	return model.ClassSummary{
		TotalStudents:  len(profiles),
		AtRiskCount:    atRisk,
		AverageScores:  averages,
		OverallAverage: roundTo1(totalSum / n),
	}, nil
}
