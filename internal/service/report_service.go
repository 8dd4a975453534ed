package service

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
	"github.com/anthonypiegaro/OA-Reporting-Backend/pkg/logging"
)

const dateLayout = "2006-01-02"

// DrillView is one recommended drill on a report view.
type DrillView struct {
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

// AssessmentView is one assessment entry of a reconstructed report.
type AssessmentView struct {
	Name         string               `json:"name"`
	Type         model.AssessmentKind `json:"type"`
	Description  string               `json:"description"`
	Unit         *string              `json:"unit"`
	PassingScore interface{}          `json:"passing_score"`
	Score        interface{}          `json:"score"`
	Passed       bool                 `json:"passed"`
	DidNotTest   bool                 `json:"did_not_test"`
	Drills       []DrillView          `json:"drills"`
}

type ReportService interface {
	BuildReport(req *BuildReportRequest) error
	GetReportView(userID, templateID uint, date string) ([]AssessmentView, error)
	GetReportDates(userID, templateID uint) ([]string, error)
	CountReports(userID, templateID uint, date string) (int64, error)
}

type reportService struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	templateRepo   repository.TemplateRepository
	assessmentRepo repository.AssessmentRepository
	reportRepo     repository.ReportRepository
}

func NewReportService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	templateRepo repository.TemplateRepository,
	assessmentRepo repository.AssessmentRepository,
	reportRepo repository.ReportRepository,
) ReportService {
	return &reportService{
		db:             db,
		userRepo:       userRepo,
		templateRepo:   templateRepo,
		assessmentRepo: assessmentRepo,
		reportRepo:     reportRepo,
	}
}

// BuildReport validates the request and persists the report with one score
// row per input inside a single transaction. Any failure rolls the whole
// build back; a failed call leaves no trace in the store.
func (s *reportService) BuildReport(req *BuildReportRequest) error {
	user, err := s.userRepo.GetUserByID(req.UserID)
	if err != nil {
		return notFoundAs(err, ErrUserNotFound)
	}

	if req.TemplateID == 0 {
		return ErrTemplateNotProvided
	}
	template, err := s.templateRepo.GetTemplateByID(req.TemplateID)
	if err != nil {
		return notFoundAs(err, ErrTemplateNotFound)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	if len(req.Assessments) == 0 {
		return ErrAssessmentsNotProvided
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		report := model.Report{
			UserID:       user.ID,
			TemplateID:   template.ID,
			CreationDate: date,
		}
		if err := s.reportRepo.CreateReport(tx, &report); err != nil {
			return err
		}

		// Process inputs in field order so a build with several bad
		// entries always fails on the same one.
		fields := make([]string, 0, len(req.Assessments))
		for field := range req.Assessments {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			input := req.Assessments[field]
			assessment, err := s.assessmentRepo.GetAssessmentByID(input.ID)
			if err != nil {
				return notFoundAs(err, ErrAssessmentNotFound)
			}
			if err := s.reportRepo.AttachAssessment(tx, &report, assessment); err != nil {
				return err
			}

			switch input.Kind {
			case model.KindQualitative:
				if err := s.createQualitativeScore(tx, user, &report, assessment, input); err != nil {
					return err
				}
			case model.KindQuantitative:
				if err := s.createQuantitativeScore(tx, user, &report, assessment, input); err != nil {
					return err
				}
			default:
				// The decoder rejects unknown kinds; a zero-value input can
				// only come from a caller that skipped binding.
				return fmt.Errorf("%w: %q", ErrInvalidAssessmentType, input.Kind)
			}
		}
		return nil
	})
}

func (s *reportService) createQualitativeScore(tx *gorm.DB, user *model.User, report *model.Report, assessment *model.Assessment, input AssessmentInput) error {
	if assessment.QualitativeDetail == nil {
		logging.Error("assessment %d (%s) has no qualitative detail", assessment.ID, assessment.Name)
		return fmt.Errorf("%w: assessment %d", ErrMissingDetail, assessment.ID)
	}

	score := model.QualitativeScore{
		AssessmentID:        assessment.ID,
		QualitativeDetailID: assessment.QualitativeDetail.ID,
		UserID:              user.ID,
		ReportID:            report.ID,
		DidNotTest:          input.DidNotTest,
	}
	if !input.DidNotTest {
		choice, err := s.assessmentRepo.GetChoiceByLabel(assessment.ID, input.Value)
		if err != nil {
			return notFoundAs(err, ErrChoiceNotFound)
		}
		score.ChoiceID = &choice.ID
	}
	return s.reportRepo.CreateQualitativeScore(tx, &score)
}

func (s *reportService) createQuantitativeScore(tx *gorm.DB, user *model.User, report *model.Report, assessment *model.Assessment, input AssessmentInput) error {
	if assessment.QuantitativeDetail == nil {
		logging.Error("assessment %d (%s) has no quantitative detail", assessment.ID, assessment.Name)
		return fmt.Errorf("%w: assessment %d", ErrMissingDetail, assessment.ID)
	}

	score := model.QuantitativeScore{
		AssessmentID:         assessment.ID,
		QuantitativeDetailID: assessment.QuantitativeDetail.ID,
		UserID:               user.ID,
		ReportID:             report.ID,
		DidNotTest:           input.DidNotTest,
	}
	if !input.DidNotTest {
		value, err := strconv.ParseFloat(input.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidScore, input.Value)
		}
		score.Score = value
	}
	return s.reportRepo.CreateQuantitativeScore(tx, &score)
}

// GetReportView reconstructs the report for (user, template, date): one
// entry per attached assessment with the computed pass flag and recommended
// drills. Both the athlete view and the trainer view use this.
func (s *reportService) GetReportView(userID, templateID uint, date string) ([]AssessmentView, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	if _, err := s.templateRepo.GetTemplateByID(templateID); err != nil {
		return nil, notFoundAs(err, ErrTemplateNotFound)
	}

	report, err := s.reportRepo.FindByOwnerTemplateDate(userID, templateID, parsed)
	if err != nil {
		return nil, notFoundAs(err, ErrReportNotFound)
	}

	views := make([]AssessmentView, 0, len(report.Assessments))
	for _, attached := range report.Assessments {
		assessment, err := s.assessmentRepo.GetAssessmentByID(attached.ID)
		if err != nil {
			return nil, err
		}

		entry := AssessmentView{
			Name:        assessment.Name,
			Type:        assessment.Kind,
			Description: assessment.Description,
			Unit:        assessment.Unit,
		}

		switch assessment.Kind {
		case model.KindQualitative:
			if err := s.fillQualitative(&entry, report, assessment); err != nil {
				return nil, err
			}
		default:
			if err := s.fillQuantitative(&entry, report, assessment); err != nil {
				return nil, err
			}
		}

		drills, err := s.assessmentRepo.GetDrillsForAssessment(assessment.ID)
		if err != nil {
			return nil, err
		}
		entry.Drills = make([]DrillView, 0, len(drills))
		for _, drill := range drills {
			entry.Drills = append(entry.Drills, DrillView{Name: drill.Name, URL: drill.URL})
		}

		views = append(views, entry)
	}
	return views, nil
}

func (s *reportService) fillQuantitative(entry *AssessmentView, report *model.Report, assessment *model.Assessment) error {
	detail := assessment.QuantitativeDetail
	if detail == nil {
		logging.Error("assessment %d (%s) has no quantitative detail", assessment.ID, assessment.Name)
		return fmt.Errorf("%w: assessment %d", ErrMissingDetail, assessment.ID)
	}
	entry.PassingScore = detail.PassingScore

	score, err := s.reportRepo.GetQuantitativeScore(report.ID, assessment.ID)
	if err != nil {
		return err
	}
	entry.DidNotTest = score.DidNotTest
	if score.DidNotTest {
		return nil
	}

	entry.Score = score.Score
	passed, err := EvaluateQuantitative(score.Score, detail)
	if err != nil {
		logging.Error("assessment %d (%s): %v", assessment.ID, assessment.Name, err)
		return err
	}
	entry.Passed = passed
	return nil
}

func (s *reportService) fillQualitative(entry *AssessmentView, report *model.Report, assessment *model.Assessment) error {
	detail := assessment.QualitativeDetail
	if detail == nil {
		logging.Error("assessment %d (%s) has no qualitative detail", assessment.ID, assessment.Name)
		return fmt.Errorf("%w: assessment %d", ErrMissingDetail, assessment.ID)
	}
	if detail.PassingChoice.AssessmentID != assessment.ID {
		logging.Error("assessment %d (%s): passing choice %d belongs to assessment %d",
			assessment.ID, assessment.Name, detail.PassingChoiceID, detail.PassingChoice.AssessmentID)
		return fmt.Errorf("%w: assessment %d", ErrPassingChoiceForeign, assessment.ID)
	}
	entry.PassingScore = detail.PassingChoice.Choice

	score, err := s.reportRepo.GetQualitativeScore(report.ID, assessment.ID)
	if err != nil {
		return err
	}
	entry.DidNotTest = score.DidNotTest
	if score.DidNotTest || score.ChoiceID == nil {
		return nil
	}

	if score.Choice != nil {
		entry.Score = score.Choice.Choice
	}
	entry.Passed = EvaluateQualitative(*score.ChoiceID, detail)
	return nil
}

// GetReportDates lists the dates this user has reports for under a
// template, newest first.
func (s *reportService) GetReportDates(userID, templateID uint) ([]string, error) {
	dates, err := s.reportRepo.GetReportDates(userID, templateID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}
	return out, nil
}

// CountReports reports how many builds exist for a key. Uniqueness on
// (user, template, date) is not enforced, so this can legitimately exceed 1.
func (s *reportService) CountReports(userID, templateID uint, date string) (int64, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return 0, err
	}
	return s.reportRepo.CountForKey(userID, templateID, parsed)
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrDateNotProvided
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}
