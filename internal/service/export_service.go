package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// ReportMeta labels an exported report PDF.
type ReportMeta struct {
	AthleteName  string
	TemplateName string
	Date         string
}

// ExportService renders report views to PDF files on disk.
type ExportService interface {
	ReportPDF(meta ReportMeta, views []AssessmentView) (string, error)
}

type exportService struct {
	outputDir string
}

func NewExportService(outputDir string) ExportService {
	return &exportService{outputDir: outputDir}
}

// ReportPDF writes one PDF with a row per assessment and returns its path.
func (s *exportService) ReportPDF(meta ReportMeta, views []AssessmentView) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 16)
	pdf.AddPage()

	pdf.Cell(40, 10, fmt.Sprintf("%s - %s", meta.TemplateName, meta.AthleteName))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 10, meta.Date)
	pdf.Ln(14)

	for _, view := range views {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, view.Name)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, s.scoreLine(view), "", "L", false)
		if len(view.Drills) > 0 {
			pdf.SetFont("Arial", "I", 10)
			for _, drill := range view.Drills {
				line := "Drill: " + drill.Name
				if drill.URL != nil {
					line += " (" + *drill.URL + ")"
				}
				pdf.MultiCell(0, 5, line, "", "L", false)
			}
		}
		pdf.Ln(4)
	}

	outputPath := filepath.Join(s.outputDir, fmt.Sprintf("report_%s.pdf", uuid.New().String()))
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("failed to save PDF: %w", err)
	}
	return outputPath, nil
}

func (s *exportService) scoreLine(view AssessmentView) string {
	if view.DidNotTest {
		return "Did not test"
	}
	result := "FAIL"
	if view.Passed {
		result = "PASS"
	}
	unit := ""
	if view.Unit != nil {
		unit = " " + *view.Unit
	}
	return fmt.Sprintf("Score: %v%s (passing: %v) - %s", view.Score, unit, view.PassingScore, result)
}
