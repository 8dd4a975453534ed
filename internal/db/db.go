package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/config"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

var db *gorm.DB

// InitDBFromConfig opens the postgres connection described by the XML config
// and applies the pool settings. When the password TYPE is "env", the config
// value names the environment variable holding the actual password.
func InitDBFromConfig(cfg *config.APIConfig) {
	password := cfg.DB.Password.Value
	if cfg.DB.Password.Type == "env" {
		password = os.Getenv(cfg.DB.Password.Value)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Username,
		password,
		cfg.DB.Name,
		cfg.DB.SSLMode,
		cfg.Context.TimeZone,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		log.Fatalf("failed to access underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Second)

	db = conn
}

// GetDB returns the shared connection.
func GetDB() *gorm.DB {
	return db
}

// Migrate registers the ordered template join table and migrates the schema.
func Migrate(conn *gorm.DB) error {
	if err := conn.SetupJoinTable(&model.ReportTemplate{}, "Assessments", &model.TemplateAssessment{}); err != nil {
		return err
	}
	return conn.AutoMigrate(
		&model.User{},
		&model.Assessment{},
		&model.QuantitativeDetail{},
		&model.QualitativeChoice{},
		&model.QualitativeDetail{},
		&model.ReportTemplate{},
		&model.Report{},
		&model.QuantitativeScore{},
		&model.QualitativeScore{},
		&model.Drill{},
		&model.Pitch{},
		&model.PitchAttribute{},
		&model.PitchAttributeChoice{},
		&model.PitchArsenalReport{},
		&model.PitchAttributeScore{},
		&model.PitchMetrics{},
		&model.PitchNote{},
	)
}
