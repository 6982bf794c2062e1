package service

import (
	"healthme-backend/internal/assessment"
	"healthme-backend/internal/model"
	"healthme-backend/internal/repository"
)

// SummaryService derives class-level views from the profile store.
type SummaryService interface {
	ClassSummary() (model.ClassSummary, error)
	HighRiskStudents() []model.StudentProfile
	Students() []model.StudentProfile
	Student(id string) (*model.StudentProfile, error)
}

type summaryService struct {
	profileRepo repository.ProfileRepository
}

func NewSummaryService(profileRepo repository.ProfileRepository) SummaryService {
	return &summaryService{profileRepo: profileRepo}
}

// ClassSummary recomputes the aggregate from the current profile collection.
// With no profiles stored it returns model.ErrEmptyInput.
func (s *summaryService) ClassSummary() (model.ClassSummary, error) {
	return assessment.Aggregate(s.profileRepo.GetAll())
}

// HighRiskStudents lists the profiles in the High risk tier, newest first.
func (s *summaryService) HighRiskStudents() []model.StudentProfile {
	var out []model.StudentProfile
	for _, p := range s.profileRepo.GetAll() {
		if p.RiskLevel == model.RiskHigh {
			out = append(out, p)
		}
	}
	return out
}

// Students returns the whole profile collection, newest first.
func (s *summaryService) Students() []model.StudentProfile {
	return s.profileRepo.GetAll()
}

// Student fetches one profile by its id.
func (s *summaryService) Student(id string) (*model.StudentProfile, error) {
	return s.profileRepo.GetByID(id)
}
