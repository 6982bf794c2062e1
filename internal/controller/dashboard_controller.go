package controller

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"healthme-backend/internal/model"
	"healthme-backend/internal/service"
)

// DashboardController serves the teacher-facing views: class summary, AI
// narratives and the PDF report.
type DashboardController struct {
	summaryService   service.SummaryService
	narrativeService service.NarrativeService
	reportService    service.ReportService
}

func NewDashboardController(
	summaryService service.SummaryService,
	narrativeService service.NarrativeService,
	reportService service.ReportService,
) *DashboardController {
	return &DashboardController{
		summaryService:   summaryService,
		narrativeService: narrativeService,
		reportService:    reportService,
	}
}

// GetSummary handles GET /summary
func (dc *DashboardController) GetSummary(c *gin.Context) {
	summary, err := dc.summaryService.ClassSummary()
	if err != nil {
		if errors.Is(err, model.ErrEmptyInput) {
			c.JSON(http.StatusConflict, gin.H{"error": "No assessments recorded yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":  summary,
		"highRisk": dc.summaryService.HighRiskStudents(),
	})
}

// AnalyzeStudent handles POST /students/:id/analysis
func (dc *DashboardController) AnalyzeStudent(c *gin.Context) {
	profile, err := dc.summaryService.Student(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	narrative := dc.narrativeService.AnalyzeStudent(c.Request.Context(), *profile)
	c.JSON(http.StatusOK, gin.H{"studentId": profile.ID, "analysis": narrative})
}

// GenerateClassReport handles POST /summary/report
func (dc *DashboardController) GenerateClassReport(c *gin.Context) {
	profiles := dc.summaryService.Students()
	if len(profiles) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "No assessments recorded yet"})
		return
	}
	narrative := dc.narrativeService.ClassReport(c.Request.Context(), profiles)
	c.JSON(http.StatusOK, gin.H{"report": narrative})
}

// DownloadReport handles GET /summary/report/download
func (dc *DashboardController) DownloadReport(c *gin.Context) {
	summary, err := dc.summaryService.ClassSummary()
	if err != nil {
		if errors.Is(err, model.ErrEmptyInput) {
			c.JSON(http.StatusConflict, gin.H{"error": "No assessments recorded yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	path, err := dc.reportService.GenerateClassReport(summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filepath.Base(path))
	c.File(path)
}
