package main

import (
	"healthme-backend/internal/model"
	"healthme-backend/internal/repository"
	"healthme-backend/utilities"
)

// seedMockStudents loads the demo class used for dashboard walkthroughs.
// Enabled by the SEED/MOCK_STUDENTS config flag; profiles exist only for the
// process session like everything else in the store.
func seedMockStudents(repo repository.ProfileRepository) {
	for _, p := range mockStudents() {
		repo.Add(p)
	}
	utilities.Info("Seeded %d mock students", repo.Count())
}

func mockStudents() []model.StudentProfile {
	return []model.StudentProfile{
		{
			ID: "ST001", Name: "ด.ช. สมชาย ใจดี", Grade: "ม.1/1", Gender: "Male", Age: 13,
			Scores: model.DimensionScores{
				model.Traditional: 80, model.Information: 40, model.Media: 30,
				model.Health: 70, model.Computer: 90, model.Science: 50,
			},
			TotalScore: 60, Level: model.LevelIntermediate, RiskLevel: model.RiskModerate,
			AssessedAt: "2023-10-15",
			History: []model.HistoryEntry{
				{Date: "2023-01-10", TotalScore: 55},
				{Date: "2023-10-15", TotalScore: 60},
			},
		},
		{
			ID: "ST002", Name: "ด.ญ. มานี มีตา", Grade: "ม.1/1", Gender: "Female", Age: 13,
			Scores: model.DimensionScores{
				model.Traditional: 90, model.Information: 85, model.Media: 80,
				model.Health: 85, model.Computer: 95, model.Science: 90,
			},
			TotalScore: 87.5, Level: model.LevelAdvanced, RiskLevel: model.RiskLow,
			AssessedAt: "2023-10-15",
			History:    []model.HistoryEntry{{Date: "2023-10-15", TotalScore: 87.5}},
		},
		{
			ID: "ST003", Name: "ด.ช. กล้าหาญ ชาญชัย", Grade: "ม.1/2", Gender: "Male", Age: 12,
			Scores: model.DimensionScores{
				model.Traditional: 40, model.Information: 30, model.Media: 20,
				model.Health: 50, model.Computer: 60, model.Science: 30,
			},
			TotalScore: 38.3, Level: model.LevelBeginner, RiskLevel: model.RiskHigh,
			AssessedAt: "2023-10-18",
			History:    []model.HistoryEntry{{Date: "2023-10-18", TotalScore: 38.3}},
		},
		{
			ID: "ST004", Name: "ด.ญ. กิ่งแก้ว แวววาว", Grade: "ม.1/2", Gender: "Female", Age: 13,
			Scores: model.DimensionScores{
				model.Traditional: 60, model.Information: 50, model.Media: 50,
				model.Health: 60, model.Computer: 50, model.Science: 55,
			},
			TotalScore: 54.1, Level: model.LevelBasic, RiskLevel: model.RiskModerate,
			AssessedAt: "2023-10-20",
			History:    []model.HistoryEntry{{Date: "2023-10-20", TotalScore: 54.1}},
		},
		{
			ID: "ST005", Name: "ด.ช. ปัญญา เลิศล้ำ", Grade: "ม.1/1", Gender: "Male", Age: 13,
			Scores: model.DimensionScores{
				model.Traditional: 80, model.Information: 75, model.Media: 70,
				model.Health: 75, model.Computer: 80, model.Science: 70,
			},
			TotalScore: 75.0, Level: model.LevelProficient, RiskLevel: model.RiskLow,
			AssessedAt: "2023-10-21",
			History:    []model.HistoryEntry{{Date: "2023-10-21", TotalScore: 75.0}},
		},
	}
}
