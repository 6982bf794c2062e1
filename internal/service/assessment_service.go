package service

import (
	"time"

	"healthme-backend/internal/assessment"
	"healthme-backend/internal/catalog"
	"healthme-backend/internal/model"
	"healthme-backend/internal/repository"
	"healthme-backend/utilities"
)

// AssessmentService runs the survey pipeline: answers in, stored profile out.
type AssessmentService interface {
	Catalog() []model.Question
	Submit(info model.PersonalInfo, answers model.AnswerSet) (*model.StudentProfile, error)
	Preview(answers model.AnswerSet) (model.DimensionScores, model.Classification)
	Reassess(id string, answers model.AnswerSet) (*model.StudentProfile, error)
	Students() []model.StudentProfile
	Student(id string) (*model.StudentProfile, error)
}

type assessmentService struct {
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewAssessmentService(profileRepo repository.ProfileRepository) AssessmentService {
	return &assessmentService{
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// Catalog returns the ordered survey questions.
func (s *assessmentService) Catalog() []model.Question {
	return catalog.Questions()
}

// Submit scores a completed answer set, classifies it, builds a profile and
// stores it. Incomplete or out-of-range answers fail with a validation error
// before anything is stored.
func (s *assessmentService) Submit(info model.PersonalInfo, answers model.AnswerSet) (*model.StudentProfile, error) {
	questions := catalog.Questions()

	scores, err := assessment.Score(questions, answers)
	if err != nil {
		return nil, err
	}
	cls := assessment.Classify(scores)

	profile, defaulted := assessment.BuildProfile(info, scores, cls, s.now())
	if defaulted {
		utilities.Warn("Assessment for %q used default personal fields (age/gender)", profile.Name)
	}

	s.profileRepo.Add(profile)
	utilities.GlobalEventBus.Publish(utilities.EventAssessmentCompleted, profile)

	return &profile, nil
}

// Preview scores a possibly incomplete answer set leniently (unanswered
// questions count as raw 0) and classifies the result without building or
// storing a profile. Demo mode only; Submit stays strict.
func (s *assessmentService) Preview(answers model.AnswerSet) (model.DimensionScores, model.Classification) {
	scores := assessment.ScoreLenient(catalog.Questions(), answers)
	return scores, assessment.Classify(scores)
}

// Reassess scores a fresh answer set for an existing student and replaces
// the stored profile with a new value whose history carries one more entry.
// This is the single place where "same student" continuity is decided, and
// it is an explicit caller operation, never an implicit merge.
func (s *assessmentService) Reassess(id string, answers model.AnswerSet) (*model.StudentProfile, error) {
	prev, err := s.profileRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	questions := catalog.Questions()
	scores, err := assessment.Score(questions, answers)
	if err != nil {
		return nil, err
	}
	cls := assessment.Classify(scores)
	date := s.now().Format(assessment.DateLayout)

	updated := assessment.AppendHistory(*prev, model.HistoryEntry{Date: date, TotalScore: cls.TotalScore})
	updated.Scores = scores
	updated.TotalScore = cls.TotalScore
	updated.Level = cls.Level
	updated.RiskLevel = cls.RiskLevel
	updated.AssessedAt = date

	if err := s.profileRepo.Replace(updated); err != nil {
		return nil, err
	}
	utilities.GlobalEventBus.Publish(utilities.EventAssessmentCompleted, updated)

	return &updated, nil
}

// Students lists all stored profiles, newest first.
func (s *assessmentService) Students() []model.StudentProfile {
	return s.profileRepo.GetAll()
}

// Student fetches one profile by its id.
func (s *assessmentService) Student(id string) (*model.StudentProfile, error) {
	return s.profileRepo.GetByID(id)
}

// InitAssessmentEventListeners subscribes the teacher-alert hook: every
// completed assessment that lands in the High risk tier is logged so the
// dashboard side can pick it up.
func InitAssessmentEventListeners() {
	utilities.GlobalEventBus.Subscribe(utilities.EventAssessmentCompleted, func(data any) {
		profile, ok := data.(model.StudentProfile)
		if !ok {
			utilities.Error("Invalid payload on %s event", utilities.EventAssessmentCompleted)
			return
		}
		if profile.RiskLevel == model.RiskHigh {
			utilities.Warn("[Alert] Student %s (%s) assessed at High risk, total score %.1f",
				profile.Name, profile.ID, profile.TotalScore)
		}
	})
}
