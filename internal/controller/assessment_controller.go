package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthme-backend/internal/catalog"
	"healthme-backend/internal/model"
	"healthme-backend/internal/repository"
	"healthme-backend/internal/service"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// submissionRequest is the SPA's assessment payload: personal info plus the
// answers map keyed by question id.
type submissionRequest struct {
	Name    string          `json:"name"`
	Grade   string          `json:"grade"`
	Gender  string          `json:"gender"`
	Age     int             `json:"age"`
	Answers model.AnswerSet `json:"answers"`
}

// GetCatalog handles GET /catalog
func (ac *AssessmentController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": ac.assessmentService.Catalog(),
		"labels":    catalog.DimensionLabels,
		"feedback":  catalog.DimensionFeedback,
		"advice":    catalog.DimensionAdvice,
		"levels":    catalog.LevelConfigs,
	})
}

// Submit handles POST /assessments
func (ac *AssessmentController) Submit(c *gin.Context) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	info := model.PersonalInfo{Name: req.Name, Grade: req.Grade, Gender: req.Gender, Age: req.Age}
	profile, err := ac.assessmentService.Submit(info, req.Answers)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Preview handles POST /assessments/preview
func (ac *AssessmentController) Preview(c *gin.Context) {
	var req struct {
		Answers model.AnswerSet `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	scores, cls := ac.assessmentService.Preview(req.Answers)
	c.JSON(http.StatusOK, gin.H{
		"scores":     scores,
		"totalScore": cls.TotalScore,
		"level":      cls.Level,
		"riskLevel":  cls.RiskLevel,
	})
}

// GetStudents handles GET /students with optional grade, risk, minLevel and
// name query filters.
func (ac *AssessmentController) GetStudents(c *gin.Context) {
	filter := repository.NewProfileFilter()
	if grade := c.Query("grade"); grade != "" {
		filter.Grade(grade)
	}
	if risk := c.Query("risk"); risk != "" {
		filter.Risk(model.RiskLevel(risk))
	}
	if minLevel := c.Query("minLevel"); minLevel != "" {
		filter.MinLevel(model.ProficiencyLevel(minLevel))
	}
	if name := c.Query("name"); name != "" {
		filter.NameContains(name)
	}
	c.JSON(http.StatusOK, filter.Apply(ac.assessmentService.Students()))
}

// GetStudent handles GET /students/:id
func (ac *AssessmentController) GetStudent(c *gin.Context) {
	profile, err := ac.assessmentService.Student(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Reassess handles POST /students/:id/reassess
func (ac *AssessmentController) Reassess(c *gin.Context) {
	var req struct {
		Answers model.AnswerSet `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	profile, err := ac.assessmentService.Reassess(c.Param("id"), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		default:
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}
