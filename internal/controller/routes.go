package controller

import (
	"github.com/gin-gonic/gin"

	"healthme-backend/internal/service"
	"healthme-backend/pkg/middleware"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	assessmentService service.AssessmentService,
	summaryService service.SummaryService,
	narrativeService service.NarrativeService,
	reportService service.ReportService,
	aiRatePerMinute int,
) {
	assessmentCtrl := NewAssessmentController(assessmentService)
	dashboardCtrl := NewDashboardController(summaryService, narrativeService, reportService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/catalog", assessmentCtrl.GetCatalog)

	assessments := r.Group("/assessments")
	{
		assessments.POST("", assessmentCtrl.Submit)
		assessments.POST("/preview", assessmentCtrl.Preview)
	}

	students := r.Group("/students")
	{
		students.GET("", assessmentCtrl.GetStudents)
		students.GET("/:id", assessmentCtrl.GetStudent)
		students.POST("/:id/reassess", assessmentCtrl.Reassess)
	}

	r.GET("/summary", dashboardCtrl.GetSummary)
	r.GET("/summary/report/download", dashboardCtrl.DownloadReport)

	// The AI endpoints fan out to a paid external API; cap their rate.
	ai := r.Group("/", middleware.RateLimitMiddleware(aiRatePerMinute))
	{
		ai.POST("/students/:id/analysis", dashboardCtrl.AnalyzeStudent)
		ai.POST("/summary/report", dashboardCtrl.GenerateClassReport)
	}
}
