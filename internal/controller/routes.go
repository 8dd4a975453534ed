package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/service"
	"github.com/anthonypiegaro/OA-Reporting-Backend/utilities"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	authService service.AuthService,
	userService service.UserService,
	assessmentService service.AssessmentService,
	reportService service.ReportService,
	pitchService service.PitchService,
	exportService service.ExportService,
) {
	registerAuthRoutes(r, authService)
	registerUserRoutes(r, userService)

	assessmentCtrl := NewAssessmentController(assessmentService)
	r.GET("/assessments", assessmentCtrl.GetAssessments)
	r.GET("/assessments/:id/drills", assessmentCtrl.GetDrills)
	r.GET("/report-templates", assessmentCtrl.GetTemplates)
	r.GET("/report-templates-min", assessmentCtrl.GetTemplatesMin)
	r.GET("/report-templates/:id/assessments", assessmentCtrl.GetTemplateAssessments)

	reportCtrl := NewReportController(reportService, assessmentService, userService, exportService)
	r.POST("/build-report", reportCtrl.BuildReport)
	r.GET("/report-templates/:id/report-dates", reportCtrl.ReportDates)
	r.GET("/report-templates/:id/report-dates/:userId", utilities.StaffOnly(), reportCtrl.TrainerReportDates)
	r.GET("/user-report/:templateId/:date", reportCtrl.SelfReport)
	r.GET("/user-report/:templateId/:date/pdf", reportCtrl.DownloadReportPDF)
	r.GET("/trainer-user-report/:userId/:templateId/:date", utilities.StaffOnly(), reportCtrl.TrainerReport)

	pitchCtrl := NewPitchController(pitchService)
	r.GET("/pitches", pitchCtrl.GetPitches)
	pitchRoutes := r.Group("/pitch-arsenal")
	{
		pitchRoutes.POST("/build-report", utilities.StaffOnly(), pitchCtrl.BuildArsenalReport)
		pitchRoutes.GET("/report/:userId/:date", pitchCtrl.GetArsenalReport)
	}
}

func registerAuthRoutes(r *gin.Engine, authService service.AuthService) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", func(c *gin.Context) {
			// Registration never accepts a staff flag; staff status is
			// granted out of band.
			var req struct {
				Email     string `json:"email" binding:"required"`
				Password  string `json:"password" binding:"required"`
				FirstName string `json:"first_name"`
				LastName  string `json:"last_name"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
				return
			}
			user := model.User{
				Email:     req.Email,
				Password:  req.Password,
				FirstName: req.FirstName,
				LastName:  req.LastName,
			}
			if err := authService.Register(&user); err != nil {
				c.JSON(httpStatus(err), gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully"})
		})

		auth.POST("/login", func(c *gin.Context) {
			var creds struct {
				Email    string `json:"email" binding:"required"`
				Password string `json:"password" binding:"required"`
			}
			if err := c.ShouldBindJSON(&creds); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
				return
			}
			user, err := authService.Login(creds.Email, creds.Password)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			access, refresh, err := utilities.GenerateTokens(user)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue tokens"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"user":          user,
				"access_token":  access,
				"refresh_token": refresh,
			})
		})

		auth.POST("/refresh", func(c *gin.Context) {
			var req struct {
				RefreshToken string `json:"refresh_token" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
				return
			}
			access, refresh, err := utilities.RefreshTokens(req.RefreshToken)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"access_token":  access,
				"refresh_token": refresh,
			})
		})
	}
}

func registerUserRoutes(r *gin.Engine, userService service.UserService) {
	r.GET("/users", func(c *gin.Context) {
		users, err := userService.GetAllUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, users)
	})

	r.GET("/users/is-staff", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"isStaff": c.GetBool("is_staff")})
	})
}
