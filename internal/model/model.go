package model

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"password,omitempty"` // bcrypt hash, stripped before responses
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssessmentKind is the closed set of assessment types.
type AssessmentKind string

const (
	KindQuantitative AssessmentKind = "quantitative"
	KindQualitative  AssessmentKind = "qualitative"
)

// PassingCondition is the comparison applied to a quantitative score.
type PassingCondition string

const (
	CondEq  PassingCondition = "eq"
	CondGt  PassingCondition = "gt"
	CondGte PassingCondition = "gte"
	CondLt  PassingCondition = "lt"
	CondLte PassingCondition = "lte"
)

// Assessment is a reusable test definition, quantitative or qualitative.
type Assessment struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;size:100"`
	Kind        AssessmentKind `json:"assessment_type" gorm:"not null;size:50"`
	Description string         `json:"description"`
	Unit        *string        `json:"unit" gorm:"size:50"`

	QuantitativeDetail *QuantitativeDetail `json:"quantitative_detail,omitempty" gorm:"foreignKey:AssessmentID"`
	QualitativeDetail  *QualitativeDetail  `json:"qualitative_detail,omitempty" gorm:"foreignKey:AssessmentID"`
	Choices            []QualitativeChoice `json:"choices,omitempty" gorm:"foreignKey:AssessmentID"`
	Drills             []Drill             `json:"drills,omitempty" gorm:"many2many:assessment_drills"`
}

// QuantitativeDetail holds the passing rule for a quantitative assessment.
// Exactly one per quantitative assessment.
type QuantitativeDetail struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	AssessmentID     uint             `json:"assessment_id" gorm:"uniqueIndex;not null"`
	PassingScore     float64          `json:"passing_score" gorm:"type:decimal(5,2);not null"`
	PassingCondition PassingCondition `json:"passing_condition" gorm:"not null;size:35"`
}

// QualitativeChoice is one enumerated option of a qualitative assessment.
// The label is unique within the owning assessment.
type QualitativeChoice struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	AssessmentID uint   `json:"assessment_id" gorm:"not null;uniqueIndex:idx_assessment_choice"`
	Choice       string `json:"choice" gorm:"not null;size:100;uniqueIndex:idx_assessment_choice"`
	Description  string `json:"description"`
}

// QualitativeDetail marks which choice counts as passing. Exactly one per
// qualitative assessment; the choice must belong to the same assessment.
type QualitativeDetail struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	AssessmentID    uint              `json:"assessment_id" gorm:"uniqueIndex;not null"`
	PassingChoiceID uint              `json:"passing_choice_id" gorm:"not null"`
	PassingChoice   QualitativeChoice `json:"passing_choice" gorm:"foreignKey:PassingChoiceID"`
}

// ReportTemplate is a named, reusable, ordered bundle of assessments.
type ReportTemplate struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Assessments []Assessment `json:"assessments,omitempty" gorm:"many2many:template_assessments"`
}

// TemplateAssessment is the join row carrying the template's ordering.
type TemplateAssessment struct {
	ReportTemplateID uint `json:"template_id" gorm:"primaryKey"`
	AssessmentID     uint `json:"assessment_id" gorm:"primaryKey"`
	Order            int  `json:"order" gorm:"column:sort_order"`
}

func (TemplateAssessment) TableName() string { return "template_assessments" }

// Report is one scored instance of a template for one user on one date.
// Reports are created atomically by the report builder and never mutated.
type Report struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	TemplateID   uint           `json:"template_id" gorm:"not null;index"`
	CreationDate time.Time      `json:"creation_date" gorm:"type:date;not null"`
	Assessments  []Assessment   `json:"assessments,omitempty" gorm:"many2many:report_assessments"`
	User         User           `json:"-" gorm:"foreignKey:UserID"`
	Template     ReportTemplate `json:"-" gorm:"foreignKey:TemplateID"`
}

// QuantitativeScore is one observed numeric value on a report.
type QuantitativeScore struct {
	ID                   uint    `json:"id" gorm:"primaryKey"`
	AssessmentID         uint    `json:"assessment_id" gorm:"not null;index"`
	QuantitativeDetailID uint    `json:"quantitative_detail_id" gorm:"not null"`
	UserID               uint    `json:"user_id" gorm:"not null"`
	ReportID             uint    `json:"report_id" gorm:"not null;index"`
	Score                float64 `json:"score" gorm:"type:decimal(5,2)"`
	DidNotTest           bool    `json:"did_not_test" gorm:"default:false"`
	Report               Report  `json:"-" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// QualitativeScore is one chosen option on a report.
type QualitativeScore struct {
	ID                  uint               `json:"id" gorm:"primaryKey"`
	AssessmentID        uint               `json:"assessment_id" gorm:"not null;index"`
	QualitativeDetailID uint               `json:"qualitative_detail_id" gorm:"not null"`
	UserID              uint               `json:"user_id" gorm:"not null"`
	ReportID            uint               `json:"report_id" gorm:"not null;index"`
	ChoiceID            *uint              `json:"choice_id"` // nil on did-not-test rows
	Choice              *QualitativeChoice `json:"choice,omitempty" gorm:"foreignKey:ChoiceID"`
	DidNotTest          bool               `json:"did_not_test" gorm:"default:false"`
	Report              Report             `json:"-" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// Drill is a remedial exercise recommended for one or more assessments.
type Drill struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null;size:150"`
	URL         *string      `json:"url" gorm:"size:200"`
	Assessments []Assessment `json:"-" gorm:"many2many:assessment_drills"`
}
