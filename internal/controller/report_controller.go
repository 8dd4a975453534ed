package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/service"
	"github.com/anthonypiegaro/OA-Reporting-Backend/utilities"
)

type ReportController struct {
	ReportService     service.ReportService
	AssessmentService service.AssessmentService
	UserService       service.UserService
	ExportService     service.ExportService
}

func NewReportController(
	reportService service.ReportService,
	assessmentService service.AssessmentService,
	userService service.UserService,
	exportService service.ExportService,
) *ReportController {
	return &ReportController{
		ReportService:     reportService,
		AssessmentService: assessmentService,
		UserService:       userService,
		ExportService:     exportService,
	}
}

// BuildReport handles the report form submission. Athletes can only build
// their own reports; staff may build for anyone.
func (rc *ReportController) BuildReport(c *gin.Context) {
	var req service.BuildReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.UserID == 0 {
		req.UserID = utilities.CurrentUserID(c)
	}
	if req.UserID != utilities.CurrentUserID(c) && !c.GetBool("is_staff") {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot build a report for another user"})
		return
	}

	if err := rc.ReportService.BuildReport(&req); err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// SelfReport returns the authenticated athlete's report view.
func (rc *ReportController) SelfReport(c *gin.Context) {
	templateID, ok := uintParam(c, "templateId")
	if !ok {
		return
	}
	views, err := rc.ReportService.GetReportView(utilities.CurrentUserID(c), templateID, c.Param("date"))
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// TrainerReport returns any athlete's report view, by explicit user id.
func (rc *ReportController) TrainerReport(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	templateID, ok := uintParam(c, "templateId")
	if !ok {
		return
	}
	views, err := rc.ReportService.GetReportView(userID, templateID, c.Param("date"))
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// ReportDates lists the dates the athlete has reports for under a template.
func (rc *ReportController) ReportDates(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	dates, err := rc.ReportService.GetReportDates(utilities.CurrentUserID(c), templateID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dates)
}

// TrainerReportDates is ReportDates for an explicit athlete.
func (rc *ReportController) TrainerReportDates(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	dates, err := rc.ReportService.GetReportDates(userID, templateID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dates)
}

// DownloadReportPDF renders the athlete's report view as a PDF file.
func (rc *ReportController) DownloadReportPDF(c *gin.Context) {
	templateID, ok := uintParam(c, "templateId")
	if !ok {
		return
	}
	userID := utilities.CurrentUserID(c)
	date := c.Param("date")

	views, err := rc.ReportService.GetReportView(userID, templateID, date)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	user, err := rc.UserService.GetUserByID(userID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	template, err := rc.AssessmentService.GetTemplate(templateID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}

	path, err := rc.ExportService.ReportPDF(service.ReportMeta{
		AthleteName:  user.FirstName + " " + user.LastName,
		TemplateName: template.Name,
		Date:         date,
	}, views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.FileAttachment(path, "report.pdf")
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}
