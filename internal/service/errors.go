package service

import (
	"errors"

	"gorm.io/gorm"
)

// Validation errors: bad caller input, reported with a message, nothing
// written.
var (
	ErrTemplateNotProvided    = errors.New("templateId not provided")
	ErrDateNotProvided        = errors.New("date not provided")
	ErrInvalidDate            = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrAssessmentsNotProvided = errors.New("assessments not provided")
	ErrInvalidAssessmentType  = errors.New("invalid assessment type")
	ErrInvalidScore           = errors.New("invalid quantitative score")
	ErrAthleteNotProvided     = errors.New("athlete not provided")
	ErrInvalidMetric          = errors.New("invalid pitch metric value")
)

// Reference errors: the input named something that does not exist. A build
// hitting one of these aborts atomically.
var (
	ErrUserNotFound       = errors.New("user does not exist")
	ErrTemplateNotFound   = errors.New("report template does not exist")
	ErrAssessmentNotFound = errors.New("assessment does not exist")
	ErrChoiceNotFound     = errors.New("choice does not exist")
	ErrPitchNotFound      = errors.New("pitch does not exist")
)

// Read-path errors.
var (
	ErrReportNotFound = errors.New("report not found")
)

// Configuration errors: corrupt reference data, not user input. These are
// logged distinctly and never folded into validation failures.
var (
	ErrNoPassingCondition   = errors.New("no passing condition was defined")
	ErrMissingDetail        = errors.New("assessment has no detail record for its kind")
	ErrPassingChoiceForeign = errors.New("passing choice does not belong to the assessment")
)

// Auth errors.
var (
	ErrEmailInUse         = errors.New("a user with this email address already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// notFoundAs maps a gorm record-not-found to the caller's typed sentinel and
// passes every other storage error through untouched.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
