package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

type PitchRepository interface {
	CreatePitch(pitch *model.Pitch) error
	GetPitches() ([]model.Pitch, error)
	GetPitchByID(id uint) (*model.Pitch, error)
	GetAttributeChoiceByID(id uint) (*model.PitchAttributeChoice, error)

	CreateArsenalReport(tx *gorm.DB, report *model.PitchArsenalReport) error
	CreateAttributeScore(tx *gorm.DB, score *model.PitchAttributeScore) error
	CreateMetrics(tx *gorm.DB, metrics *model.PitchMetrics) error
	CreateNote(tx *gorm.DB, note *model.PitchNote) error

	FindArsenalReport(userID uint, date time.Time) (*model.PitchArsenalReport, error)
	GetMetricsForReport(reportID uint) ([]model.PitchMetrics, error)
	GetAttributeScoresForReport(reportID uint) ([]model.PitchAttributeScore, error)
	GetNotesForReport(reportID uint) ([]model.PitchNote, error)
}

type pitchRepository struct {
	db *gorm.DB
}

func NewPitchRepository(db *gorm.DB) PitchRepository {
	return &pitchRepository{db: db}
}

func (r *pitchRepository) CreatePitch(pitch *model.Pitch) error {
	return r.db.Create(pitch).Error
}

func (r *pitchRepository) GetPitches() ([]model.Pitch, error) {
	var pitches []model.Pitch
	err := r.db.Preload("Attributes.Choices").Order("name").Find(&pitches).Error
	return pitches, err
}

func (r *pitchRepository) GetPitchByID(id uint) (*model.Pitch, error) {
	var pitch model.Pitch
	if err := r.db.First(&pitch, id).Error; err != nil {
		return nil, err
	}
	return &pitch, nil
}

func (r *pitchRepository) GetAttributeChoiceByID(id uint) (*model.PitchAttributeChoice, error) {
	var choice model.PitchAttributeChoice
	if err := r.db.First(&choice, id).Error; err != nil {
		return nil, err
	}
	return &choice, nil
}

func (r *pitchRepository) CreateArsenalReport(tx *gorm.DB, report *model.PitchArsenalReport) error {
	return tx.Create(report).Error
}

func (r *pitchRepository) CreateAttributeScore(tx *gorm.DB, score *model.PitchAttributeScore) error {
	return tx.Create(score).Error
}

func (r *pitchRepository) CreateMetrics(tx *gorm.DB, metrics *model.PitchMetrics) error {
	return tx.Create(metrics).Error
}

func (r *pitchRepository) CreateNote(tx *gorm.DB, note *model.PitchNote) error {
	return tx.Create(note).Error
}

// FindArsenalReport takes the oldest report when the same pitcher has more
// than one for a date.
func (r *pitchRepository) FindArsenalReport(userID uint, date time.Time) (*model.PitchArsenalReport, error) {
	var report model.PitchArsenalReport
	err := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("id").
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *pitchRepository) GetMetricsForReport(reportID uint) ([]model.PitchMetrics, error) {
	var metrics []model.PitchMetrics
	err := r.db.Where("report_id = ?", reportID).Find(&metrics).Error
	return metrics, err
}

func (r *pitchRepository) GetAttributeScoresForReport(reportID uint) ([]model.PitchAttributeScore, error) {
	var scores []model.PitchAttributeScore
	err := r.db.Preload("Choice.Attribute").Where("report_id = ?", reportID).Find(&scores).Error
	return scores, err
}

func (r *pitchRepository) GetNotesForReport(reportID uint) ([]model.PitchNote, error) {
	var notes []model.PitchNote
	err := r.db.Where("report_id = ?", reportID).Find(&notes).Error
	return notes, err
}
