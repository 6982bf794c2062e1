package assessment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"healthme-backend/internal/model"
)

// DefaultAge substitutes a missing or unusable student age. The tool targets
// lower-secondary students, hence 12.
const DefaultAge = 12

// DefaultGender substitutes a missing gender field.
const DefaultGender = "Other"

// DateLayout is the storage format for assessment dates.
const DateLayout = "2006-01-02"

// BuildProfile assembles an immutable student profile from personal info and
// the engine outputs. The returned flag reports whether any personal field
// was substituted with a default; the build itself never fails on bad
// personal info.
//
// The profile ID is unique within the process session. History starts with a
// single entry for this assessment; later entries are appended through
// AppendHistory by the caller, never here.
func BuildProfile(info model.PersonalInfo, scores model.DimensionScores, cls model.Classification, assessedAt time.Time) (model.StudentProfile, bool) {
	defaulted := false

	age := info.Age
	if age <= 0 {
		age = DefaultAge
		defaulted = true
	}
	gender := strings.TrimSpace(info.Gender)
	if gender == "" {
		gender = DefaultGender
		defaulted = true
	}

	date := assessedAt.Format(DateLayout)

	copied := make(model.DimensionScores, len(scores))
	for dim, s := range scores {
		copied[dim] = s
	}

	return model.StudentProfile{
		ID:         "ST" + uuid.New().String(),
		Name:       info.Name,
		Grade:      info.Grade,
		Gender:     gender,
		Age:        age,
		Scores:     copied,
		TotalScore: cls.TotalScore,
		Level:      cls.Level,
		RiskLevel:  cls.RiskLevel,
		AssessedAt: date,
		History:    []model.HistoryEntry{{Date: date, TotalScore: cls.TotalScore}},
	}, defaulted
}

// AppendHistory returns a copy of the profile with the entry appended.
// The input profile and its history slice are left untouched; prior entries
// are never rewritten or removed. Deciding that two profiles belong to the
// same real student is the caller's concern.
func AppendHistory(p model.StudentProfile, entry model.HistoryEntry) model.StudentProfile {
	history := make([]model.HistoryEntry, len(p.History), len(p.History)+1)
	copy(history, p.History)
	p.History = append(history, entry)
	return p
}
