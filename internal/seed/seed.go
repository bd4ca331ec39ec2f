package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/repositories"
	"github.com/ozank/collegium/internal/config"
	"github.com/ozank/collegium/internal/pkg/auth"
)

// defaultDepartments are created on first start so the API is usable
// immediately.
var defaultDepartments = []string{
	"Computer Engineering",
	"Electrical Engineering",
	"Mathematics",
	"Physics",
}

// CreateDefaultData seeds departments and the admin account when they do
// not exist yet. Errors are collected so one failed record does not stop
// the rest.
func CreateDefaultData(ctx context.Context, database *gorm.DB, cfg *config.Config, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(database, lgr)

	var finalErr error
	for _, name := range defaultDepartments {
		var count int64
		err := database.WithContext(ctx).
			Model(&models.Department{}).
			Where("name = ?", name).
			Count(&count).Error
		if err != nil {
			lgr.Error().Err(err).Str("department", name).Msg("error checking default department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if count > 0 {
			continue
		}

		department := &models.Department{}
		department.Name = name
		department.SetMaxStudentCount(0)
		if err := repos.Departments.Create(ctx, department); err != nil {
			lgr.Error().Err(err).Str("department", name).Msg("error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	adminEmail := cfg.Seed.AdminEmail
	adminPassword := cfg.Seed.AdminPassword
	if adminEmail == "" || adminPassword == "" {
		lgr.Info().Msg("admin seed credentials not configured, skipping admin account")
		return finalErr
	}

	exists, err := repos.Users.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("error checking admin account")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Info().Msg("admin account already exists, skipping creation")
		return finalErr
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &models.AppUser{
		Email:         adminEmail,
		Username:      "admin",
		PasswordHash:  hash,
		FirstName:     "System",
		LastName:      "Administrator",
		Role:          models.RoleAdmin,
		SecurityStamp: uuid.NewString(),
	}
	if err := repos.Users.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("error creating admin account")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int("adminID", admin.ID).Msg("default admin account created")
	return finalErr
}
