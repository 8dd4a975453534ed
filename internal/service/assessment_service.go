package service

import (
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
)

// AssessmentService exposes the catalog: assessment definitions, report
// templates, and the drills recommended per assessment. Reference data only;
// the report builder never writes through this service.
type AssessmentService interface {
	GetAssessments() ([]model.Assessment, error)
	GetQualitativeAssessments() ([]model.Assessment, error)
	GetTemplates() ([]model.ReportTemplate, error)
	GetTemplatesMin() ([]model.ReportTemplate, error)
	GetTemplate(templateID uint) (*model.ReportTemplate, error)
	GetTemplateAssessments(templateID uint) ([]model.Assessment, error)
	DrillsFor(assessmentID uint) ([]DrillView, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	templateRepo   repository.TemplateRepository
}

func NewAssessmentService(assessmentRepo repository.AssessmentRepository, templateRepo repository.TemplateRepository) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		templateRepo:   templateRepo,
	}
}

func (s *assessmentService) GetAssessments() ([]model.Assessment, error) {
	return s.assessmentRepo.GetAssessments()
}

// GetQualitativeAssessments returns only qualitative assessments, with
// their choices attached for form rendering.
func (s *assessmentService) GetQualitativeAssessments() ([]model.Assessment, error) {
	return s.assessmentRepo.GetQualitativeAssessments()
}

func (s *assessmentService) GetTemplates() ([]model.ReportTemplate, error) {
	return s.templateRepo.GetTemplates()
}

func (s *assessmentService) GetTemplatesMin() ([]model.ReportTemplate, error) {
	return s.templateRepo.GetTemplatesMin()
}

func (s *assessmentService) GetTemplate(templateID uint) (*model.ReportTemplate, error) {
	template, err := s.templateRepo.GetTemplateByID(templateID)
	if err != nil {
		return nil, notFoundAs(err, ErrTemplateNotFound)
	}
	return template, nil
}

// GetTemplateAssessments returns a template's assessments in template order.
func (s *assessmentService) GetTemplateAssessments(templateID uint) ([]model.Assessment, error) {
	if _, err := s.templateRepo.GetTemplateByID(templateID); err != nil {
		return nil, notFoundAs(err, ErrTemplateNotFound)
	}
	return s.templateRepo.GetTemplateAssessments(templateID)
}

// DrillsFor lists the remedial drills recommended for an assessment.
func (s *assessmentService) DrillsFor(assessmentID uint) ([]DrillView, error) {
	drills, err := s.assessmentRepo.GetDrillsForAssessment(assessmentID)
	if err != nil {
		return nil, notFoundAs(err, ErrAssessmentNotFound)
	}
	views := make([]DrillView, 0, len(drills))
	for _, drill := range drills {
		views = append(views, DrillView{Name: drill.Name, URL: drill.URL})
	}
	return views, nil
}
