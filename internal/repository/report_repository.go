package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

// ReportRepository persists reports and their score rows. Write methods take
// the transaction handle explicitly so that one build is one transaction.
type ReportRepository interface {
	CreateReport(tx *gorm.DB, report *model.Report) error
	AttachAssessment(tx *gorm.DB, report *model.Report, assessment *model.Assessment) error
	CreateQuantitativeScore(tx *gorm.DB, score *model.QuantitativeScore) error
	CreateQualitativeScore(tx *gorm.DB, score *model.QualitativeScore) error

	FindByOwnerTemplateDate(userID, templateID uint, date time.Time) (*model.Report, error)
	GetQuantitativeScore(reportID, assessmentID uint) (*model.QuantitativeScore, error)
	GetQualitativeScore(reportID, assessmentID uint) (*model.QualitativeScore, error)
	GetReportDates(userID, templateID uint) ([]time.Time, error)
	CountForKey(userID, templateID uint, date time.Time) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateReport(tx *gorm.DB, report *model.Report) error {
	return tx.Create(report).Error
}

func (r *reportRepository) AttachAssessment(tx *gorm.DB, report *model.Report, assessment *model.Assessment) error {
	return tx.Model(report).Association("Assessments").Append(assessment)
}

func (r *reportRepository) CreateQuantitativeScore(tx *gorm.DB, score *model.QuantitativeScore) error {
	return tx.Create(score).Error
}

func (r *reportRepository) CreateQualitativeScore(tx *gorm.DB, score *model.QualitativeScore) error {
	return tx.Create(score).Error
}

// FindByOwnerTemplateDate resolves the report for (user, template, date).
// Uniqueness is not database-enforced; when duplicates exist the oldest
// report wins, deterministically.
func (r *reportRepository) FindByOwnerTemplateDate(userID, templateID uint, date time.Time) (*model.Report, error) {
	var report model.Report
	err := r.db.Preload("Assessments").
		Where("user_id = ? AND template_id = ? AND creation_date = ?", userID, templateID, date).
		Order("id").
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) GetQuantitativeScore(reportID, assessmentID uint) (*model.QuantitativeScore, error) {
	var score model.QuantitativeScore
	err := r.db.Where("report_id = ? AND assessment_id = ?", reportID, assessmentID).
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *reportRepository) GetQualitativeScore(reportID, assessmentID uint) (*model.QualitativeScore, error) {
	var score model.QualitativeScore
	err := r.db.Preload("Choice").
		Where("report_id = ? AND assessment_id = ?", reportID, assessmentID).
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// GetReportDates lists the distinct report dates for a user and template,
// newest first.
func (r *reportRepository) GetReportDates(userID, templateID uint) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.Model(&model.Report{}).
		Where("user_id = ? AND template_id = ?", userID, templateID).
		Distinct("creation_date").
		Order("creation_date DESC").
		Pluck("creation_date", &dates).Error
	return dates, err
}

func (r *reportRepository) CountForKey(userID, templateID uint, date time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Report{}).
		Where("user_id = ? AND template_id = ? AND creation_date = ?", userID, templateID, date).
		Count(&count).Error
	return count, err
}
