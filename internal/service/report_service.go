package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"healthme-backend/internal/model"
	"healthme-backend/internal/repository"
	"healthme-backend/utilities"
)

// ReportService renders the class summary as a downloadable PDF.
type ReportService interface {
	GenerateClassReport(summary model.ClassSummary) (string, error)
}

type reportService struct {
	profileRepo repository.ProfileRepository
	outputDir   string
}

func NewReportService(profileRepo repository.ProfileRepository, outputDir string) ReportService {
	return &reportService{profileRepo: profileRepo, outputDir: outputDir}
}

// GenerateClassReport writes a summary PDF under the configured output
// directory and returns its path. The PDF uses the English dimension names;
// the built-in core fonts carry no Thai glyphs.
func (s *reportService) GenerateClassReport(summary model.ClassSummary) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 16)
	pdf.AddPage()

	pdf.Cell(40, 10, "Health-Me Class Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Overview")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total students: %d", summary.TotalStudents))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("At-risk students (High): %d", summary.AtRiskCount))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Overall average score: %.1f / 100", summary.OverallAverage))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Average score by dimension")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Dimension", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Average", "1", 0, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for _, dim := range model.Dimensions() {
		pdf.CellFormat(90, 8, string(dim), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%d", summary.AverageScores[dim]), "1", 0, "C", false, 0, "")
		pdf.Ln(8)
	}
	pdf.Ln(4)

	// Roster uses the student ids; the core fonts cannot render the Thai names.
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Students")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(70, 8, "Student ID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Score", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 8, "Level", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Risk", "1", 0, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for _, p := range s.profileRepo.GetAll() {
		pdf.CellFormat(70, 8, p.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.1f", p.TotalScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 8, string(p.Level), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, string(p.RiskLevel), "1", 0, "C", false, 0, "")
		pdf.Ln(8)
	}

	outputPath := filepath.Join(s.outputDir, fmt.Sprintf("class_report_%s.pdf", time.Now().Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("failed to save PDF: %w", err)
	}

	utilities.Info("Class report written to %s", outputPath)
	return outputPath, nil
}
