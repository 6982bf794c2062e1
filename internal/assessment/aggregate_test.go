package assessment

import (
	"errors"
	"testing"

	"healthme-backend/internal/model"
)

func profileWith(total float64, risk model.RiskLevel, scores model.DimensionScores) model.StudentProfile {
	return model.StudentProfile{
		ID:         "ST-" + string(risk),
		TotalScore: total,
		RiskLevel:  risk,
		Scores:     scores,
	}
}

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil)
	if !errors.Is(err, model.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Aggregate([]model.StudentProfile{})
	if !errors.Is(err, model.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput for empty slice, got %v", err)
	}
}

func TestAggregate_ThreeProfiles(t *testing.T) {
	profiles := []model.StudentProfile{
		profileWith(100, model.RiskLow, uniformScores(100)),
		profileWith(50, model.RiskModerate, uniformScores(50)),
		profileWith(0, model.RiskHigh, uniformScores(0)),
	}

	summary, err := Aggregate(profiles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalStudents != 3 {
		t.Errorf("totalStudents: got %d, want 3", summary.TotalStudents)
	}
	if summary.AtRiskCount != 1 {
		t.Errorf("atRiskCount: got %d, want 1", summary.AtRiskCount)
	}
	if summary.OverallAverage != 50.0 {
		t.Errorf("overallAverage: got %v, want 50.0", summary.OverallAverage)
	}
	for _, dim := range model.Dimensions() {
		if summary.AverageScores[dim] != 50 {
			t.Errorf("dimension %s: got %d, want 50", dim, summary.AverageScores[dim])
		}
	}
}

// Only High counts as at-risk; Moderate does not.
func TestAggregate_AtRiskCountsHighOnly(t *testing.T) {
	profiles := []model.StudentProfile{
		profileWith(65, model.RiskModerate, uniformScores(65)),
		profileWith(55, model.RiskModerate, uniformScores(55)),
		profileWith(40, model.RiskHigh, uniformScores(40)),
		profileWith(30, model.RiskHigh, uniformScores(30)),
	}

	summary, err := Aggregate(profiles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.AtRiskCount != 2 {
		t.Errorf("atRiskCount: got %d, want 2", summary.AtRiskCount)
	}
}

func TestAggregate_RoundsDimensionAverages(t *testing.T) {
	// Media: (30 + 31 + 31) / 3 = 30.67 -> 31
	profiles := []model.StudentProfile{
		profileWith(30, model.RiskHigh, model.DimensionScores{model.Media: 30}),
		profileWith(31, model.RiskHigh, model.DimensionScores{model.Media: 31}),
		profileWith(31, model.RiskHigh, model.DimensionScores{model.Media: 31}),
	}

	summary, err := Aggregate(profiles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.AverageScores[model.Media] != 31 {
		t.Errorf("media average: got %d, want 31", summary.AverageScores[model.Media])
	}
}

func TestAggregate_OverallAverageOneDecimal(t *testing.T) {
	profiles := []model.StudentProfile{
		profileWith(60, model.RiskModerate, uniformScores(60)),
		profileWith(55, model.RiskModerate, uniformScores(55)),
		profileWith(51, model.RiskModerate, uniformScores(51)),
	}

	summary, err := Aggregate(profiles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (60 + 55 + 51) / 3 = 55.333... -> 55.3
	if summary.OverallAverage != 55.3 {
		t.Errorf("overallAverage: got %v, want 55.3", summary.OverallAverage)
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	profiles := []model.StudentProfile{
		profileWith(60, model.RiskModerate, uniformScores(60)),
	}
	before := profiles[0].Scores[model.Health]

	if _, err := Aggregate(profiles); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profiles[0].Scores[model.Health] != before {
		t.Error("aggregate mutated its input")
	}
}
