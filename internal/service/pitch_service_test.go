package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
)

type pitchFixture struct {
	conn     *gorm.DB
	svc      PitchService
	pitcher  model.User
	fastball model.Pitch
	slider   model.Pitch
}

func newPitchFixture(t *testing.T) *pitchFixture {
	t.Helper()
	conn := newTestDB(t)

	userRepo := repository.NewUserRepository(conn)
	pitchRepo := repository.NewPitchRepository(conn)

	f := &pitchFixture{conn: conn}
	f.svc = NewPitchService(conn, userRepo, pitchRepo)

	f.pitcher = model.User{FirstName: "Sam", LastName: "Okafor", Email: "sam@example.com", Password: "x"}
	require.NoError(t, userRepo.CreateUser(&f.pitcher))

	f.fastball = model.Pitch{
		Name: "Fastball",
		Attributes: []model.PitchAttribute{
			{Attribute: "Command", Choices: []model.PitchAttributeChoice{
				{Score: 40, Description: "Fringe average"},
				{Score: 60, Description: "Above average"},
			}},
			{Attribute: "Shape", Choices: []model.PitchAttributeChoice{
				{Score: 50, Description: "Average"},
			}},
		},
	}
	require.NoError(t, pitchRepo.CreatePitch(&f.fastball))

	f.slider = model.Pitch{
		Name: "Slider",
		Attributes: []model.PitchAttribute{
			{Attribute: "Command", Choices: []model.PitchAttributeChoice{
				{Score: 30, Description: "Below average"},
			}},
		},
	}
	require.NoError(t, pitchRepo.CreatePitch(&f.slider))

	return f
}

func (f *pitchFixture) fastballInput() PitchInput {
	command := f.fastball.Attributes[0]
	shape := f.fastball.Attributes[1]
	return PitchInput{
		Throws: true,
		Notes:  "Plays well up in the zone.",
		Metrics: PitchMetricsInput{
			Velocity: "94.5", SpinRate: "2350", HorizontalBreak: "8.5", VerticalBreak: "17.0",
		},
		Attributes: map[string]uint{
			fmt.Sprint(command.ID): command.Choices[1].ID,
			fmt.Sprint(shape.ID):   shape.Choices[0].ID,
		},
	}
}

func TestBuildArsenalReportAndView(t *testing.T) {
	f := newPitchFixture(t)

	req := &BuildArsenalRequest{
		AthleteID: f.pitcher.ID,
		Date:      "2026-04-02",
		Report: map[string]PitchInput{
			fmt.Sprint(f.fastball.ID): f.fastballInput(),
			fmt.Sprint(f.slider.ID):   {Throws: false},
		},
	}
	require.NoError(t, f.svc.BuildArsenalReport(req))

	view, err := f.svc.GetArsenalView(f.pitcher.ID, "2026-04-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-04-02", view.Date)

	// The slider was not thrown and must not appear.
	require.Len(t, view.Pitches, 1)
	entry := view.Pitches[0]
	assert.Equal(t, "Fastball", entry.Pitch)
	assert.Equal(t, 94.5, entry.Velocity)
	assert.Equal(t, 2350, entry.Spin)
	assert.Equal(t, 17.0, entry.VerticalBreak)
	assert.Equal(t, 8.5, entry.HorizontalBreak)
	assert.Equal(t, "Plays well up in the zone.", entry.Notes)

	require.Len(t, entry.Attributes, 2)
	byAttr := make(map[string]AttributeScoreView, 2)
	for _, a := range entry.Attributes {
		byAttr[a.Attribute] = a
	}
	assert.Equal(t, 60, byAttr["Command"].Score)
	assert.Equal(t, 50, byAttr["Shape"].Score)
}

func TestBuildArsenalReportValidation(t *testing.T) {
	f := newPitchFixture(t)

	base := func() *BuildArsenalRequest {
		return &BuildArsenalRequest{
			AthleteID: f.pitcher.ID,
			Date:      "2026-04-02",
			Report:    map[string]PitchInput{fmt.Sprint(f.fastball.ID): f.fastballInput()},
		}
	}

	t.Run("athlete required", func(t *testing.T) {
		req := base()
		req.AthleteID = 0
		assert.ErrorIs(t, f.svc.BuildArsenalReport(req), ErrAthleteNotProvided)
	})

	t.Run("unknown pitch", func(t *testing.T) {
		req := base()
		req.Report["9999"] = f.fastballInput()
		assert.ErrorIs(t, f.svc.BuildArsenalReport(req), ErrPitchNotFound)
	})

	t.Run("bad metric", func(t *testing.T) {
		req := base()
		input := req.Report[fmt.Sprint(f.fastball.ID)]
		input.Metrics.Velocity = "hard"
		req.Report[fmt.Sprint(f.fastball.ID)] = input
		assert.ErrorIs(t, f.svc.BuildArsenalReport(req), ErrInvalidMetric)
	})

	t.Run("choice from another attribute", func(t *testing.T) {
		req := base()
		input := req.Report[fmt.Sprint(f.fastball.ID)]
		command := f.fastball.Attributes[0]
		shape := f.fastball.Attributes[1]
		input.Attributes = map[string]uint{
			fmt.Sprint(command.ID): shape.Choices[0].ID,
		}
		req.Report[fmt.Sprint(f.fastball.ID)] = input
		assert.ErrorIs(t, f.svc.BuildArsenalReport(req), ErrChoiceNotFound)
	})

	// Every failed build rolls the whole report back.
	var count int64
	require.NoError(t, f.conn.Model(&model.PitchArsenalReport{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetArsenalViewNotFound(t *testing.T) {
	f := newPitchFixture(t)

	_, err := f.svc.GetArsenalView(f.pitcher.ID, "2026-04-02")
	assert.ErrorIs(t, err, ErrReportNotFound)
}
