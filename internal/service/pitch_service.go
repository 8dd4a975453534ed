package service

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
)

// PitchMetricsInput carries the measured numbers for one pitch, as strings
// the way the capture form submits them.
type PitchMetricsInput struct {
	Velocity        string `json:"velocity"`
	SpinRate        string `json:"spinRate"`
	HorizontalBreak string `json:"horizontalBreak"`
	VerticalBreak   string `json:"verticalBreak"`
}

// PitchInput is one pitch's section of an arsenal report form. Pitches the
// athlete does not throw are present with Throws=false and are skipped.
type PitchInput struct {
	Throws     bool              `json:"throws"`
	Notes      string            `json:"notes"`
	Metrics    PitchMetricsInput `json:"metrics"`
	Attributes map[string]uint   `json:"attributes"` // attribute id -> graded choice id
}

type BuildArsenalRequest struct {
	AthleteID uint                  `json:"athleteId"`
	Date      string                `json:"date"`
	Report    map[string]PitchInput `json:"report"` // pitch id -> input
}

type AttributeScoreView struct {
	Attribute   string `json:"attribute"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

type PitchArsenalEntry struct {
	Pitch           string               `json:"pitch"`
	Velocity        float64              `json:"velocity"`
	Spin            int                  `json:"spin"`
	VerticalBreak   float64              `json:"vertical_break"`
	HorizontalBreak float64              `json:"horizontal_break"`
	Notes           string               `json:"notes"`
	Attributes      []AttributeScoreView `json:"attributes"`
}

type ArsenalView struct {
	Date    string              `json:"date"`
	Pitches []PitchArsenalEntry `json:"pitches"`
}

type PitchService interface {
	GetPitches() ([]model.Pitch, error)
	BuildArsenalReport(req *BuildArsenalRequest) error
	GetArsenalView(userID uint, date string) (*ArsenalView, error)
}

type pitchService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	pitchRepo repository.PitchRepository
}

func NewPitchService(db *gorm.DB, userRepo repository.UserRepository, pitchRepo repository.PitchRepository) PitchService {
	return &pitchService{db: db, userRepo: userRepo, pitchRepo: pitchRepo}
}

func (s *pitchService) GetPitches() ([]model.Pitch, error) {
	return s.pitchRepo.GetPitches()
}

// BuildArsenalReport persists one dated arsenal evaluation. Same contract as
// the report builder: one transaction, any bad reference or value aborts the
// whole build.
func (s *pitchService) BuildArsenalReport(req *BuildArsenalRequest) error {
	if req.AthleteID == 0 {
		return ErrAthleteNotProvided
	}
	athlete, err := s.userRepo.GetUserByID(req.AthleteID)
	if err != nil {
		return notFoundAs(err, ErrUserNotFound)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		report := model.PitchArsenalReport{UserID: athlete.ID, Date: date}
		if err := s.pitchRepo.CreateArsenalReport(tx, &report); err != nil {
			return err
		}

		for pitchKey, input := range req.Report {
			if !input.Throws {
				continue
			}

			pitchID, err := strconv.ParseUint(pitchKey, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrPitchNotFound, pitchKey)
			}
			pitch, err := s.pitchRepo.GetPitchByID(uint(pitchID))
			if err != nil {
				return notFoundAs(err, ErrPitchNotFound)
			}

			if err := s.pitchRepo.CreateNote(tx, &model.PitchNote{
				ReportID: report.ID,
				PitchID:  pitch.ID,
				Note:     input.Notes,
			}); err != nil {
				return err
			}

			metrics, err := parseMetrics(report.ID, pitch.ID, input.Metrics)
			if err != nil {
				return err
			}
			if err := s.pitchRepo.CreateMetrics(tx, metrics); err != nil {
				return err
			}

			for attrKey, choiceID := range input.Attributes {
				attrID, err := strconv.ParseUint(attrKey, 10, 64)
				if err != nil {
					return fmt.Errorf("%w: attribute %q", ErrChoiceNotFound, attrKey)
				}
				choice, err := s.pitchRepo.GetAttributeChoiceByID(choiceID)
				if err != nil {
					return notFoundAs(err, ErrChoiceNotFound)
				}
				if choice.AttributeID != uint(attrID) {
					return fmt.Errorf("%w: choice %d does not grade attribute %d", ErrChoiceNotFound, choiceID, attrID)
				}
				if err := s.pitchRepo.CreateAttributeScore(tx, &model.PitchAttributeScore{
					ReportID: report.ID,
					ChoiceID: choice.ID,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func parseMetrics(reportID, pitchID uint, in PitchMetricsInput) (*model.PitchMetrics, error) {
	velocity, err := strconv.ParseFloat(in.Velocity, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: velocity %q", ErrInvalidMetric, in.Velocity)
	}
	spin, err := strconv.Atoi(in.SpinRate)
	if err != nil {
		return nil, fmt.Errorf("%w: spin rate %q", ErrInvalidMetric, in.SpinRate)
	}
	horizontal, err := strconv.ParseFloat(in.HorizontalBreak, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: horizontal break %q", ErrInvalidMetric, in.HorizontalBreak)
	}
	vertical, err := strconv.ParseFloat(in.VerticalBreak, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: vertical break %q", ErrInvalidMetric, in.VerticalBreak)
	}
	return &model.PitchMetrics{
		ReportID:        reportID,
		PitchID:         pitchID,
		Velocity:        velocity,
		Spin:            spin,
		HorizontalBreak: horizontal,
		VerticalBreak:   vertical,
	}, nil
}

// GetArsenalView reassembles a pitcher's arsenal report for a date: metrics,
// note, and graded attributes per thrown pitch.
func (s *pitchService) GetArsenalView(userID uint, date string) (*ArsenalView, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	report, err := s.pitchRepo.FindArsenalReport(userID, parsed)
	if err != nil {
		return nil, notFoundAs(err, ErrReportNotFound)
	}

	metrics, err := s.pitchRepo.GetMetricsForReport(report.ID)
	if err != nil {
		return nil, err
	}
	notes, err := s.pitchRepo.GetNotesForReport(report.ID)
	if err != nil {
		return nil, err
	}
	scores, err := s.pitchRepo.GetAttributeScoresForReport(report.ID)
	if err != nil {
		return nil, err
	}

	notesByPitch := make(map[uint]string, len(notes))
	for _, note := range notes {
		notesByPitch[note.PitchID] = note.Note
	}
	attrsByPitch := make(map[uint][]AttributeScoreView)
	for _, score := range scores {
		if score.Choice.Attribute == nil {
			continue
		}
		attr := score.Choice.Attribute
		attrsByPitch[attr.PitchID] = append(attrsByPitch[attr.PitchID], AttributeScoreView{
			Attribute:   attr.Attribute,
			Score:       score.Choice.Score,
			Description: score.Choice.Description,
		})
	}

	view := ArsenalView{Date: report.Date.Format(dateLayout)}
	for _, m := range metrics {
		pitch, err := s.pitchRepo.GetPitchByID(m.PitchID)
		if err != nil {
			return nil, err
		}
		view.Pitches = append(view.Pitches, PitchArsenalEntry{
			Pitch:           pitch.Name,
			Velocity:        m.Velocity,
			Spin:            m.Spin,
			VerticalBreak:   m.VerticalBreak,
			HorizontalBreak: m.HorizontalBreak,
			Notes:           notesByPitch[m.PitchID],
			Attributes:      attrsByPitch[m.PitchID],
		})
	}
	return &view, nil
}
