package repository

import (
	"strings"

	"healthme-backend/internal/model"
)

// ProfileFilter is a fluent predicate builder over the profile collection.
// Conditions are ANDed; an empty filter matches everything. Apply never
// mutates its input.
type ProfileFilter struct {
	predicates []func(model.StudentProfile) bool
}

func NewProfileFilter() *ProfileFilter {
	return &ProfileFilter{}
}

func (f *ProfileFilter) Grade(grade string) *ProfileFilter {
	f.predicates = append(f.predicates, func(p model.StudentProfile) bool {
		return p.Grade == grade
	})
	return f
}

func (f *ProfileFilter) Risk(risk model.RiskLevel) *ProfileFilter {
	f.predicates = append(f.predicates, func(p model.StudentProfile) bool {
		return p.RiskLevel == risk
	})
	return f
}

// MinLevel keeps profiles at or above the given proficiency level.
func (f *ProfileFilter) MinLevel(level model.ProficiencyLevel) *ProfileFilter {
	f.predicates = append(f.predicates, func(p model.StudentProfile) bool {
		return p.Level.Rank() >= level.Rank()
	})
	return f
}

// NameContains matches case-insensitively on a name fragment.
func (f *ProfileFilter) NameContains(fragment string) *ProfileFilter {
	lower := strings.ToLower(fragment)
	f.predicates = append(f.predicates, func(p model.StudentProfile) bool {
		return strings.Contains(strings.ToLower(p.Name), lower)
	})
	return f
}

func (f *ProfileFilter) Apply(profiles []model.StudentProfile) []model.StudentProfile {
	out := make([]model.StudentProfile, 0, len(profiles))
	for _, p := range profiles {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f *ProfileFilter) matches(p model.StudentProfile) bool {
	for _, pred := range f.predicates {
		if !pred(p) {
			return false
		}
	}
	return true
}
