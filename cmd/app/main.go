package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"healthme-backend/internal/config"
	"healthme-backend/internal/controller"
	"healthme-backend/internal/llm"
	"healthme-backend/internal/repository"
	"healthme-backend/internal/service"
	"healthme-backend/pkg/middleware"
	"healthme-backend/utilities"
)

func main() {
	printStartUpBanner()

	// Secrets (the AI key) live in the environment; .env is optional.
	_ = godotenv.Load()

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utilities.InitLogging(cfg.Logging.Dir)

	// Build the AI client from explicit configuration. A broken AI setup
	// degrades to the mock client; assessments must keep working without
	// narrative text.
	aiClient, err := llm.NewClient(context.Background(), llm.Config{
		Provider: cfg.AI.Provider,
		APIKey:   os.Getenv("GEMINI_API_KEY"),
		BaseURL:  cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
		Timeout:  time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		utilities.Warn("AI client unavailable (%v), falling back to mock provider", err)
		aiClient = llm.NewMockClient()
	}

	// Create the in-memory profile store.
	profileRepo := repository.NewProfileRepository()

	// Create services.
	assessmentService := service.NewAssessmentService(profileRepo)
	summaryService := service.NewSummaryService(profileRepo)
	narrativeService := service.NewNarrativeService(aiClient)
	reportService := service.NewReportService(profileRepo, cfg.Report.OutputDir)

	service.InitAssessmentEventListeners()

	if cfg.Seed.MockStudents {
		seedMockStudents(profileRepo)
	}

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}

	controller.RegisterRoutes(r, assessmentService, summaryService, narrativeService, reportService, cfg.AI.RatePerMinute)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	utilities.Info("Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("HEALTH-ME", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("HEALTH-ME API (v%s)\n\n", "1.0.0-Portfolio")
}
