package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"healthme-backend/internal/catalog"
	"healthme-backend/internal/llm"
	"healthme-backend/internal/model"
	"healthme-backend/utilities"
)

// FallbackNarrative is shown verbatim whenever the AI collaborator fails.
// An AI failure never propagates past this service; profiles and summaries
// are fully valid without narrative text.
const FallbackNarrative = "เกิดข้อผิดพลาดในการเชื่อมต่อกับ AI"

// NarrativeService asks the external text-generation collaborator for
// commentary on a profile or a whole class. The returned strings are opaque:
// displayed as-is, never parsed.
type NarrativeService interface {
	AnalyzeStudent(ctx context.Context, profile model.StudentProfile) string
	ClassReport(ctx context.Context, profiles []model.StudentProfile) string
}

type narrativeService struct {
	client llm.Client
}

func NewNarrativeService(client llm.Client) NarrativeService {
	return &narrativeService{client: client}
}

// AnalyzeStudent builds the per-student prompt and returns the model's
// commentary, or the fixed fallback string on any failure.
func (n *narrativeService) AnalyzeStudent(ctx context.Context, profile model.StudentProfile) string {
	text, err := n.client.GenerateText(ctx, StudentPrompt(profile))
	if err != nil {
		utilities.Error("Student narrative generation failed: %v", err)
		return FallbackNarrative
	}
	if text == "" {
		return "ไม่สามารถวิเคราะห์ข้อมูลได้ในขณะนี้"
	}
	return text
}

// ClassReport builds the class-level prompt and returns the model's
// strategic report, or the fixed fallback string on any failure.
func (n *narrativeService) ClassReport(ctx context.Context, profiles []model.StudentProfile) string {
	text, err := n.client.GenerateText(ctx, ClassPrompt(profiles))
	if err != nil {
		utilities.Error("Class report generation failed: %v", err)
		return FallbackNarrative
	}
	if text == "" {
		return "ไม่สามารถสร้างรายงานได้"
	}
	return text
}

// StudentPrompt interpolates one profile into the analysis prompt. Scores are
// listed with their Thai dimension labels in canonical order.
func StudentPrompt(profile model.StudentProfile) string {
	var scoreLines []string
	for _, dim := range model.Dimensions() {
		scoreLines = append(scoreLines, fmt.Sprintf("- %s: %d/100", catalog.DimensionLabels[dim], profile.Scores[dim]))
	}

	return fmt.Sprintf(`Analyze the following student's E-Health Literacy profile based on Norman & Skinner's dimensions.
Student: %s (Grade %s, Age %d)
Overall Risk Level: %s

Scores:
%s

Please provide a concise summary in Thai (ภาษาไทย):
1. Identification of strengths.
2. Specific areas that need improvement (especially low scores).
3. Actionable advice for the teacher to help this student improve their health literacy.
Keep the tone encouraging but professional. Limit to 150 words.`,
		profile.Name, profile.Grade, profile.Age, profile.RiskLevel, strings.Join(scoreLines, "\n"))
}

// ClassPrompt interpolates the class collection into the report prompt:
// risk-tier counts plus the three most common weak dimensions (score < 50).
func ClassPrompt(profiles []model.StudentProfile) string {
	riskCounts := map[model.RiskLevel]int{}
	weakCounts := map[model.Dimension]int{}

	for _, p := range profiles {
		riskCounts[p.RiskLevel]++
		for _, dim := range model.Dimensions() {
			if p.Scores[dim] < 50 {
				weakCounts[dim]++
			}
		}
	}

	topIssues := topWeakDimensions(weakCounts, 3)
	labels := make([]string, len(topIssues))
	for i, dim := range topIssues {
		labels[i] = catalog.DimensionLabels[dim]
	}

	return fmt.Sprintf(`Act as a Health Education Consultant. Generate a strategic class report in Thai (ภาษาไทย).
Data Summary:
- Total Students: %d
- High Risk Students: %d
- Moderate Risk Students: %d
- Low Risk Students: %d
- Common Weaknesses found in class: %s

Please suggest:
1. An overview of the class health literacy status.
2. A suggested classroom activity or workshop topic to address the common weaknesses.
3. A strategy for monitoring "High Risk" students without stigmatizing them.`,
		len(profiles),
		riskCounts[model.RiskHigh],
		riskCounts[model.RiskModerate],
		riskCounts[model.RiskLow],
		strings.Join(labels, ", "))
}

func topWeakDimensions(counts map[model.Dimension]int, limit int) []model.Dimension {
	var dims []model.Dimension
	for _, dim := range model.Dimensions() {
		if counts[dim] > 0 {
			dims = append(dims, dim)
		}
	}
	sort.SliceStable(dims, func(i, j int) bool {
		return counts[dims[i]] > counts[dims[j]]
	})
	if len(dims) > limit {
		dims = dims[:limit]
	}
	return dims
}
