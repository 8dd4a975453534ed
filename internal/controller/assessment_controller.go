package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/service"
)

type AssessmentController struct {
	AssessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// GetAssessments lists the catalog; ?kind=qualitative narrows to qualitative
// assessments with their choices attached.
func (ac *AssessmentController) GetAssessments(c *gin.Context) {
	var (
		assessments []model.Assessment
		err         error
	)
	if c.Query("kind") == string(model.KindQualitative) {
		assessments, err = ac.AssessmentService.GetQualitativeAssessments()
	} else {
		assessments, err = ac.AssessmentService.GetAssessments()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assessments)
}

func (ac *AssessmentController) GetTemplates(c *gin.Context) {
	templates, err := ac.AssessmentService.GetTemplates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (ac *AssessmentController) GetTemplatesMin(c *gin.Context) {
	templates, err := ac.AssessmentService.GetTemplatesMin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (ac *AssessmentController) GetTemplateAssessments(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	assessments, err := ac.AssessmentService.GetTemplateAssessments(templateID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assessments)
}

// GetDrills lists the drills recommended for one assessment.
func (ac *AssessmentController) GetDrills(c *gin.Context) {
	assessmentID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	drills, err := ac.AssessmentService.DrillsFor(assessmentID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drills)
}
