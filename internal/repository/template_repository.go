package repository

import (
	"gorm.io/gorm"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

type TemplateRepository interface {
	CreateTemplate(template *model.ReportTemplate) error
	AddAssessment(templateID, assessmentID uint, order int) error
	GetTemplates() ([]model.ReportTemplate, error)
	GetTemplatesMin() ([]model.ReportTemplate, error)
	GetTemplateByID(id uint) (*model.ReportTemplate, error)
	GetTemplateAssessments(templateID uint) ([]model.Assessment, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) CreateTemplate(template *model.ReportTemplate) error {
	return r.db.Create(template).Error
}

func (r *templateRepository) AddAssessment(templateID, assessmentID uint, order int) error {
	row := model.TemplateAssessment{
		ReportTemplateID: templateID,
		AssessmentID:     assessmentID,
		Order:            order,
	}
	return r.db.Create(&row).Error
}

func (r *templateRepository) GetTemplates() ([]model.ReportTemplate, error) {
	var templates []model.ReportTemplate
	err := r.db.Preload("Assessments").Order("name").Find(&templates).Error
	return templates, err
}

// GetTemplatesMin returns only ids and names, for pickers.
func (r *templateRepository) GetTemplatesMin() ([]model.ReportTemplate, error) {
	var templates []model.ReportTemplate
	err := r.db.Select("id", "name").Order("name").Find(&templates).Error
	return templates, err
}

func (r *templateRepository) GetTemplateByID(id uint) (*model.ReportTemplate, error) {
	var template model.ReportTemplate
	if err := r.db.First(&template, id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// GetTemplateAssessments returns the template's assessments in template
// order, with qualitative choices attached.
func (r *templateRepository) GetTemplateAssessments(templateID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Preload("Choices").
		Joins("JOIN template_assessments ta ON ta.assessment_id = assessments.id").
		Where("ta.report_template_id = ?", templateID).
		Order("ta.sort_order").
		Find(&assessments).Error
	return assessments, err
}
