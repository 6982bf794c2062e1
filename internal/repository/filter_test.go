package repository

import (
	"testing"

	"healthme-backend/internal/model"
)

func filterFixture() []model.StudentProfile {
	return []model.StudentProfile{
		{ID: "ST1", Name: "สมชาย ใจดี", Grade: "ม.1/1", RiskLevel: model.RiskModerate, Level: model.LevelIntermediate},
		{ID: "ST2", Name: "มานี มีตา", Grade: "ม.1/1", RiskLevel: model.RiskLow, Level: model.LevelAdvanced},
		{ID: "ST3", Name: "กล้าหาญ ชาญชัย", Grade: "ม.1/2", RiskLevel: model.RiskHigh, Level: model.LevelBeginner},
	}
}

func idsOf(profiles []model.StudentProfile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.ID
	}
	return out
}

func TestProfileFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter *ProfileFilter
		want   []string
	}{
		{"empty filter matches all", NewProfileFilter(), []string{"ST1", "ST2", "ST3"}},
		{"by grade", NewProfileFilter().Grade("ม.1/1"), []string{"ST1", "ST2"}},
		{"by risk", NewProfileFilter().Risk(model.RiskHigh), []string{"ST3"}},
		{"by min level", NewProfileFilter().MinLevel(model.LevelIntermediate), []string{"ST1", "ST2"}},
		{"by name fragment", NewProfileFilter().NameContains("มานี"), []string{"ST2"}},
		{"conditions are ANDed", NewProfileFilter().Grade("ม.1/1").Risk(model.RiskLow), []string{"ST2"}},
		{"no match yields empty slice", NewProfileFilter().Grade("ม.6/9"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idsOf(tt.filter.Apply(filterFixture()))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}
