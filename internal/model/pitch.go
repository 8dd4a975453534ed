package model

import "time"

// Pitch is a catalog entry for one pitch type (fastball, slider, ...).
type Pitch struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	Name       string           `json:"name" gorm:"uniqueIndex;not null;size:50"`
	Attributes []PitchAttribute `json:"attributes,omitempty" gorm:"foreignKey:PitchID"`
}

// PitchAttribute is a graded quality of a pitch (command, shape, deception).
type PitchAttribute struct {
	ID        uint                   `json:"id" gorm:"primaryKey"`
	PitchID   uint                   `json:"pitch_id" gorm:"not null;index"`
	Attribute string                 `json:"attribute" gorm:"not null;size:150"`
	Choices   []PitchAttributeChoice `json:"choices,omitempty" gorm:"foreignKey:AttributeID"`
}

// PitchAttributeChoice is one point on an attribute's grading scale.
// The score is unique within the attribute.
type PitchAttributeChoice struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	AttributeID uint   `json:"attribute_id" gorm:"not null;uniqueIndex:idx_attribute_score"`
	Score       int    `json:"score" gorm:"not null;uniqueIndex:idx_attribute_score"`
	Description string `json:"description"`

	Attribute *PitchAttribute `json:"-" gorm:"foreignKey:AttributeID"`
}

// PitchArsenalReport is one dated arsenal evaluation for one pitcher.
type PitchArsenalReport struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	UserID uint      `json:"user_id" gorm:"not null;index"`
	Date   time.Time `json:"date" gorm:"type:date;not null"`
	User   User      `json:"-" gorm:"foreignKey:UserID"`
}

// PitchAttributeScore records the graded choice selected for one attribute
// on one arsenal report.
type PitchAttributeScore struct {
	ID       uint                 `json:"id" gorm:"primaryKey"`
	ReportID uint                 `json:"report_id" gorm:"not null;index"`
	ChoiceID uint                 `json:"choice_id" gorm:"not null"`
	Choice   PitchAttributeChoice `json:"choice" gorm:"foreignKey:ChoiceID"`
	Report   PitchArsenalReport   `json:"-" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// PitchMetrics holds the measured numbers for one pitch on one report.
type PitchMetrics struct {
	ID              uint               `json:"id" gorm:"primaryKey"`
	ReportID        uint               `json:"report_id" gorm:"not null;uniqueIndex:idx_report_pitch"`
	PitchID         uint               `json:"pitch_id" gorm:"not null;uniqueIndex:idx_report_pitch"`
	Velocity        float64            `json:"velocity" gorm:"type:decimal(4,1)"`
	Spin            int                `json:"spin"`
	VerticalBreak   float64            `json:"vertical_break" gorm:"type:decimal(4,1)"`
	HorizontalBreak float64            `json:"horizontal_break" gorm:"type:decimal(4,1)"`
	Report          PitchArsenalReport `json:"-" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// PitchNote is the coach's free-text note for one pitch on one report.
type PitchNote struct {
	ID       uint               `json:"id" gorm:"primaryKey"`
	ReportID uint               `json:"report_id" gorm:"not null;index"`
	PitchID  uint               `json:"pitch_id" gorm:"not null"`
	Note     string             `json:"note"`
	Report   PitchArsenalReport `json:"-" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}
