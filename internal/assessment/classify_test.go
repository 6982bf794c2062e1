package assessment

import (
	"reflect"
	"testing"

	"healthme-backend/internal/catalog"
	"healthme-backend/internal/model"
)

func uniformScores(v int) model.DimensionScores {
	scores := make(model.DimensionScores)
	for _, dim := range model.Dimensions() {
		scores[dim] = v
	}
	return scores
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		mean      int
		wantLevel model.ProficiencyLevel
		wantRisk  model.RiskLevel
	}{
		{"exactly 80 is Advanced", 80, model.LevelAdvanced, model.RiskLow},
		{"exactly 70 is Proficient and Low, not Moderate", 70, model.LevelProficient, model.RiskLow},
		{"exactly 60 is Intermediate", 60, model.LevelIntermediate, model.RiskModerate},
		{"exactly 50 is Basic and Moderate, not High", 50, model.LevelBasic, model.RiskModerate},
		{"49 is Beginner and High", 49, model.LevelBeginner, model.RiskHigh},
		{"69 is Intermediate and Moderate", 69, model.LevelIntermediate, model.RiskModerate},
		{"79 is Proficient and Low", 79, model.LevelProficient, model.RiskLow},
		{"0 is Beginner and High", 0, model.LevelBeginner, model.RiskHigh},
		{"100 is Advanced and Low", 100, model.LevelAdvanced, model.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := Classify(uniformScores(tt.mean))
			if cls.Level != tt.wantLevel {
				t.Errorf("level: got %s, want %s", cls.Level, tt.wantLevel)
			}
			if cls.RiskLevel != tt.wantRisk {
				t.Errorf("risk: got %s, want %s", cls.RiskLevel, tt.wantRisk)
			}
			if cls.TotalScore != float64(tt.mean) {
				t.Errorf("totalScore: got %v, want %v", cls.TotalScore, float64(tt.mean))
			}
		})
	}
}

func TestClassify_OneDecimalPlace(t *testing.T) {
	// 40+30+20+50+60+30 = 230, mean 38.333... -> 38.3
	scores := model.DimensionScores{
		model.Traditional: 40, model.Information: 30, model.Media: 20,
		model.Health: 50, model.Computer: 60, model.Science: 30,
	}
	cls := Classify(scores)
	if cls.TotalScore != 38.3 {
		t.Errorf("totalScore: got %v, want 38.3", cls.TotalScore)
	}
	if cls.Level != model.LevelBeginner || cls.RiskLevel != model.RiskHigh {
		t.Errorf("got %s/%s, want Beginner/High", cls.Level, cls.RiskLevel)
	}
}

// Risk is derived from the unrounded mean: 69.97 rounds to 70.0 for display
// but must stay Moderate.
func TestClassify_UnroundedMeanDecidesTier(t *testing.T) {
	scores := model.DimensionScores{
		model.Traditional: 70, model.Information: 70, model.Media: 70,
		model.Health: 70, model.Computer: 70, model.Science: 69,
	}
	cls := Classify(scores) // mean 69.8333 -> display 69.8
	if cls.RiskLevel != model.RiskModerate {
		t.Errorf("risk: got %s, want Moderate", cls.RiskLevel)
	}
	if cls.Level != model.LevelIntermediate {
		t.Errorf("level: got %s, want Intermediate", cls.Level)
	}
	if cls.TotalScore != 69.8 {
		t.Errorf("totalScore: got %v, want 69.8", cls.TotalScore)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	scores := model.DimensionScores{
		model.Traditional: 80, model.Information: 40, model.Media: 30,
		model.Health: 70, model.Computer: 90, model.Science: 50,
	}
	first := Classify(scores)
	second := Classify(scores)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("classify not deterministic: %v vs %v", first, second)
	}
	if first.TotalScore != 60.0 || first.Level != model.LevelIntermediate || first.RiskLevel != model.RiskModerate {
		t.Errorf("got %v, want 60.0/Intermediate/Moderate", first)
	}
}

func TestScoreClassify_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		raw       int
		wantTotal float64
		wantLevel model.ProficiencyLevel
		wantRisk  model.RiskLevel
	}{
		{"all fives", 5, 100.0, model.LevelAdvanced, model.RiskLow},
		{"all ones", 1, 20.0, model.LevelBeginner, model.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := Score(catalog.Questions(), fullAnswers(tt.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			cls := Classify(scores)
			if cls.TotalScore != tt.wantTotal {
				t.Errorf("totalScore: got %v, want %v", cls.TotalScore, tt.wantTotal)
			}
			if cls.Level != tt.wantLevel {
				t.Errorf("level: got %s, want %s", cls.Level, tt.wantLevel)
			}
			if cls.RiskLevel != tt.wantRisk {
				t.Errorf("risk: got %s, want %s", cls.RiskLevel, tt.wantRisk)
			}
		})
	}
}
