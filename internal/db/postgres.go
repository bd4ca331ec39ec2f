package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/config"
)

// Connect opens the PostgreSQL database and configures the connection
// pool from the application config.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
	if cfg.Server.Mode == "development" {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	database, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	sqlDB.SetConnMaxLifetime(maxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}
	return database, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(
		&models.Department{},
		&models.Address{},
		&models.Course{},
		&models.StudentCourse{},
		&models.Exam{},
		&models.Grade{},
		&models.StudentCrucialInformation{},
		&models.AppUser{},
	); err != nil {
		return err
	}

	// The person subtypes share one table and AutoMigrate applies only
	// one model per table, so each subtype migrates on its own to
	// contribute its columns.
	for _, person := range []interface{}{
		&models.Student{},
		&models.Professor{},
		&models.Administrator{},
	} {
		if err := database.AutoMigrate(person); err != nil {
			return err
		}
	}
	return nil
}
