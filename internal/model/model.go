package model

// Dimension is one of the six e-health literacy dimensions
// (Norman & Skinner). The set is closed and never extended at runtime.
type Dimension string

const (
	Traditional Dimension = "Traditional"
	Information Dimension = "Information"
	Media       Dimension = "Media"
	Health      Dimension = "Health"
	Computer    Dimension = "Computer"
	Science     Dimension = "Science"
)

// Dimensions returns the six dimensions in their canonical display order.
// Iterating this slice instead of ranging over score maps keeps all derived
// output independent of map iteration order.
func Dimensions() []Dimension {
	return []Dimension{Traditional, Information, Media, Health, Computer, Science}
}

// Question is a single Likert-scale survey item. Questions are defined once
// at process start and never change.
type Question struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Dimension Dimension `json:"dimension"`
}

// AnswerSet maps question ID to the raw Likert answer (1-5).
type AnswerSet map[int]int

// RawScoreMin and RawScoreMax bound a valid Likert answer.
const (
	RawScoreMin = 1
	RawScoreMax = 5
)

// DimensionScores maps every catalog dimension to its normalized score,
// a rounded integer in [0,100].
type DimensionScores map[Dimension]int

// RiskLevel is the coarse 3-tier classification used for teacher alerts.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// ProficiencyLevel is the fine 5-tier classification used for badges and
// motivational framing.
type ProficiencyLevel string

const (
	LevelBeginner     ProficiencyLevel = "Beginner"
	LevelBasic        ProficiencyLevel = "Basic"
	LevelIntermediate ProficiencyLevel = "Intermediate"
	LevelProficient   ProficiencyLevel = "Proficient"
	LevelAdvanced     ProficiencyLevel = "Advanced"
)

// Rank orders proficiency levels: Beginner(0) < ... < Advanced(4).
// Unknown levels rank below Beginner.
func (p ProficiencyLevel) Rank() int {
	switch p {
	case LevelBeginner:
		return 0
	case LevelBasic:
		return 1
	case LevelIntermediate:
		return 2
	case LevelProficient:
		return 3
	case LevelAdvanced:
		return 4
	}
	return -1
}

// Classification bundles the derived outcome of one assessment. Both tiers
// are computed from the same unrounded mean; neither is independently
// settable.
type Classification struct {
	TotalScore float64          `json:"totalScore"`
	RiskLevel  RiskLevel        `json:"riskLevel"`
	Level      ProficiencyLevel `json:"level"`
}

// PersonalInfo is the student-entered identity block of an assessment
// submission.
type PersonalInfo struct {
	Name   string `json:"name"`
	Grade  string `json:"grade"`
	Gender string `json:"gender"`
	Age    int    `json:"age"`
}

// HistoryEntry is one point in a student's progress track.
type HistoryEntry struct {
	Date       string  `json:"date"`
	TotalScore float64 `json:"totalScore"`
}

// StudentProfile is the complete record of one assessment outcome.
// Profiles are immutable once built; reassessment produces a new value with
// an appended history entry, never an in-place mutation.
type StudentProfile struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Grade      string           `json:"grade"`
	Gender     string           `json:"gender"`
	Age        int              `json:"age"`
	Scores     DimensionScores  `json:"scores"`
	TotalScore float64          `json:"totalScore"`
	Level      ProficiencyLevel `json:"level"`
	RiskLevel  RiskLevel        `json:"riskLevel"`
	AssessedAt string           `json:"assessedAt"`
	History    []HistoryEntry   `json:"history"`
}

// ClassSummary is the ephemeral class-level aggregate, recomputed on demand
// from the current profile collection and never persisted.
type ClassSummary struct {
	TotalStudents  int             `json:"totalStudents"`
	AtRiskCount    int             `json:"atRiskCount"`
	AverageScores  DimensionScores `json:"averageScores"`
	OverallAverage float64         `json:"overallAverage"`
}
