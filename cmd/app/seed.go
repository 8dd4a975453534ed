package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/db"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
)

// seedReferenceData loads the starter catalog (assessments, the default
// template, drills, pitches) on first boot. Skipped when any assessments
// already exist.
func seedReferenceData(
	conn *gorm.DB,
	assessmentRepo repository.AssessmentRepository,
	templateRepo repository.TemplateRepository,
	pitchRepo repository.PitchRepository,
) {
	qe := db.NewQueryExecutor(conn)
	exists, err := qe.Exists("assessments", map[string]interface{}{})
	if err != nil {
		log.Printf("seed: failed to inspect catalog: %v", err)
		return
	}
	if exists {
		log.Println("seed: reference data already present, skipping")
		return
	}

	inches := "in"
	pounds := "lbs"
	seconds := "s"

	quantitative := []model.Assessment{
		{
			Name: "Broad Jump", Kind: model.KindQuantitative, Unit: &inches,
			Description:        "Standing two-foot broad jump, best of three attempts.",
			QuantitativeDetail: &model.QuantitativeDetail{PassingScore: 115, PassingCondition: model.CondGte},
		},
		{
			Name: "1RM Squat", Kind: model.KindQuantitative, Unit: &pounds,
			Description:        "One-rep max back squat.",
			QuantitativeDetail: &model.QuantitativeDetail{PassingScore: 450, PassingCondition: model.CondGt},
		},
		{
			Name: "40yd Sprint", Kind: model.KindQuantitative, Unit: &seconds,
			Description:        "Forty-yard dash, laser timed.",
			QuantitativeDetail: &model.QuantitativeDetail{PassingScore: 4.8, PassingCondition: model.CondLte},
		},
	}
	for i := range quantitative {
		if err := assessmentRepo.CreateAssessment(&quantitative[i]); err != nil {
			log.Printf("seed: failed to create assessment %s: %v", quantitative[i].Name, err)
			return
		}
	}

	overhead := model.Assessment{
		Name: "Overhead Squat", Kind: model.KindQualitative,
		Description: "Movement screen for the overhead squat pattern.",
		Choices: []model.QualitativeChoice{
			{Choice: "poor", Description: "Heels rise or torso collapses."},
			{Choice: "average", Description: "Full depth with minor compensation."},
			{Choice: "perfect", Description: "Full depth, neutral spine, bar over midfoot."},
		},
	}
	if err := assessmentRepo.CreateAssessment(&overhead); err != nil {
		log.Printf("seed: failed to create assessment %s: %v", overhead.Name, err)
		return
	}
	passing, err := assessmentRepo.GetChoiceByLabel(overhead.ID, "perfect")
	if err != nil {
		log.Printf("seed: failed to resolve passing choice: %v", err)
		return
	}
	if err := conn.Create(&model.QualitativeDetail{
		AssessmentID:    overhead.ID,
		PassingChoiceID: passing.ID,
	}).Error; err != nil {
		log.Printf("seed: failed to create qualitative detail: %v", err)
		return
	}

	template := model.ReportTemplate{Name: "Physical Report"}
	if err := templateRepo.CreateTemplate(&template); err != nil {
		log.Printf("seed: failed to create template: %v", err)
		return
	}
	ordered := []uint{quantitative[0].ID, quantitative[1].ID, quantitative[2].ID, overhead.ID}
	for i, assessmentID := range ordered {
		if err := templateRepo.AddAssessment(template.ID, assessmentID, i+1); err != nil {
			log.Printf("seed: failed to order template assessment: %v", err)
			return
		}
	}

	squatURL := "https://www.youtube.com/watch?v=goblet-squat-progression"
	drills := []model.Drill{
		{Name: "Goblet Squat Progression", URL: &squatURL, Assessments: []model.Assessment{{ID: quantitative[1].ID}, {ID: overhead.ID}}},
		{Name: "Depth Jump Series", Assessments: []model.Assessment{{ID: quantitative[0].ID}}},
		{Name: "Sled Sprint Intervals", Assessments: []model.Assessment{{ID: quantitative[2].ID}}},
	}
	for i := range drills {
		if err := assessmentRepo.CreateDrill(&drills[i]); err != nil {
			log.Printf("seed: failed to create drill %s: %v", drills[i].Name, err)
			return
		}
	}

	for _, name := range []string{"Fastball", "Slider", "Changeup", "Curveball"} {
		pitch := model.Pitch{
			Name: name,
			Attributes: []model.PitchAttribute{
				{Attribute: "Command", Choices: gradingScale()},
				{Attribute: "Shape", Choices: gradingScale()},
			},
		}
		if err := pitchRepo.CreatePitch(&pitch); err != nil {
			log.Printf("seed: failed to create pitch %s: %v", name, err)
			return
		}
	}

	log.Println("seed: reference data loaded")
}

// gradingScale is the scouting 20-80 scale.
func gradingScale() []model.PitchAttributeChoice {
	return []model.PitchAttributeChoice{
		{Score: 20, Description: "Well below average"},
		{Score: 30, Description: "Below average"},
		{Score: 40, Description: "Fringe average"},
		{Score: 50, Description: "Average"},
		{Score: 60, Description: "Above average"},
		{Score: 70, Description: "Plus"},
		{Score: 80, Description: "Elite"},
	}
}
