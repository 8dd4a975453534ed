package main

import (
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/config"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/controller"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/db"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/service"
	"github.com/anthonypiegaro/OA-Reporting-Backend/pkg/logging"
	"github.com/anthonypiegaro/OA-Reporting-Backend/pkg/middleware"
	"github.com/anthonypiegaro/OA-Reporting-Backend/utilities"
)

func main() {
	printStartUpBanner()

	// Secrets (JWT, SendGrid) come from the environment; .env is optional.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logging.Setup("logs", cfg.RequestDump)

	// Initialize DB using the loaded config and run migrations.
	db.InitDBFromConfig(cfg)
	conn := db.GetDB()
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	// Create repositories.
	userRepo := repository.NewUserRepository(conn)
	assessmentRepo := repository.NewAssessmentRepository(conn)
	templateRepo := repository.NewTemplateRepository(conn)
	reportRepo := repository.NewReportRepository(conn)
	pitchRepo := repository.NewPitchRepository(conn)

	if cfg.DB.Initialize {
		seedReferenceData(conn, assessmentRepo, templateRepo, pitchRepo)
	}

	// Create services.
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	assessmentService := service.NewAssessmentService(assessmentRepo, templateRepo)
	reportService := service.NewReportService(conn, userRepo, templateRepo, assessmentRepo, reportRepo)
	pitchService := service.NewPitchService(conn, userRepo, pitchRepo)
	exportService := service.NewExportService(cfg.Export.Dir)

	service.InitMailEventListeners(cfg.Mail)

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	r.Use(utilities.AuthMiddleware())

	controller.RegisterRoutes(r, authService, userService, assessmentService, reportService, pitchService, exportService)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("OA REPORTING", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("OA REPORTING API (v%s)\n\n", "1.0.0")
}
