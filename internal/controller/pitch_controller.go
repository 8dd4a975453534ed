package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/service"
)

type PitchController struct {
	PitchService service.PitchService
}

func NewPitchController(pitchService service.PitchService) *PitchController {
	return &PitchController{PitchService: pitchService}
}

// GetPitches lists the pitch catalog with graded attributes and choices.
func (pc *PitchController) GetPitches(c *gin.Context) {
	pitches, err := pc.PitchService.GetPitches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pitches)
}

// BuildArsenalReport records one dated arsenal evaluation; staff only.
func (pc *PitchController) BuildArsenalReport(c *gin.Context) {
	var req service.BuildArsenalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := pc.PitchService.BuildArsenalReport(&req); err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// GetArsenalReport returns the arsenal view for an athlete and date.
func (pc *PitchController) GetArsenalReport(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	view, err := pc.PitchService.GetArsenalView(userID, c.Param("date"))
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
