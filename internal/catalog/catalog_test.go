package catalog

import (
	"testing"

	"healthme-backend/internal/model"
)

func TestQuestions_OnePerDimension(t *testing.T) {
	questions := Questions()
	if len(questions) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(questions))
	}

	seen := make(map[model.Dimension]bool)
	ids := make(map[int]bool)
	for _, q := range questions {
		if q.ID <= 0 {
			t.Errorf("question %q has non-positive id %d", q.Text, q.ID)
		}
		if ids[q.ID] {
			t.Errorf("duplicate question id %d", q.ID)
		}
		ids[q.ID] = true
		if q.Text == "" {
			t.Errorf("question %d has empty text", q.ID)
		}
		seen[q.Dimension] = true
	}

	for _, dim := range model.Dimensions() {
		if !seen[dim] {
			t.Errorf("dimension %s has no question", dim)
		}
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	first := Questions()
	first[0].Text = "tampered"
	if Questions()[0].Text == "tampered" {
		t.Error("catalog leaked its backing slice")
	}
}

func TestDimensionMaps_Complete(t *testing.T) {
	for _, dim := range model.Dimensions() {
		if DimensionLabels[dim] == "" {
			t.Errorf("dimension %s has no label", dim)
		}
		if DimensionAdvice[dim] == "" {
			t.Errorf("dimension %s has no advice", dim)
		}
		if DimensionFeedback[dim] == "" {
			t.Errorf("dimension %s has no feedback", dim)
		}
	}
}

func TestLevelConfigs_Complete(t *testing.T) {
	levels := []model.ProficiencyLevel{
		model.LevelBeginner, model.LevelBasic, model.LevelIntermediate,
		model.LevelProficient, model.LevelAdvanced,
	}
	for _, level := range levels {
		cfg, ok := LevelConfigs[level]
		if !ok {
			t.Fatalf("level %s has no config", level)
		}
		if cfg.Badge == "" || cfg.Description == "" || cfg.Encouragement == "" {
			t.Errorf("level %s config incomplete: %+v", level, cfg)
		}
		if len(cfg.Recommendations) == 0 {
			t.Errorf("level %s has no recommendations", level)
		}
		if cfg.Level != level {
			t.Errorf("level %s config carries wrong level %s", level, cfg.Level)
		}
	}
}
