package repository

import (
	"gorm.io/gorm"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

type AssessmentRepository interface {
	CreateAssessment(assessment *model.Assessment) error
	GetAssessments() ([]model.Assessment, error)
	GetQualitativeAssessments() ([]model.Assessment, error)
	GetAssessmentByID(id uint) (*model.Assessment, error)
	GetChoiceByLabel(assessmentID uint, label string) (*model.QualitativeChoice, error)
	CreateDrill(drill *model.Drill) error
	GetDrillsForAssessment(assessmentID uint) ([]model.Drill, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) CreateAssessment(assessment *model.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) GetAssessments() ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Order("name").Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) GetQualitativeAssessments() ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Preload("Choices").
		Where("kind = ?", model.KindQualitative).
		Order("name").
		Find(&assessments).Error
	return assessments, err
}

// GetAssessmentByID loads the assessment with its passing detail for
// whichever kind it is, plus its choices when qualitative.
func (r *assessmentRepository) GetAssessmentByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("QuantitativeDetail").
		Preload("QualitativeDetail").
		Preload("QualitativeDetail.PassingChoice").
		Preload("Choices").
		First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) GetChoiceByLabel(assessmentID uint, label string) (*model.QualitativeChoice, error) {
	var choice model.QualitativeChoice
	err := r.db.Where("assessment_id = ? AND choice = ?", assessmentID, label).
		First(&choice).Error
	if err != nil {
		return nil, err
	}
	return &choice, nil
}

func (r *assessmentRepository) CreateDrill(drill *model.Drill) error {
	return r.db.Create(drill).Error
}

func (r *assessmentRepository) GetDrillsForAssessment(assessmentID uint) ([]model.Drill, error) {
	var assessment model.Assessment
	if err := r.db.Preload("Drills").First(&assessment, assessmentID).Error; err != nil {
		return nil, err
	}
	return assessment.Drills, nil
}
