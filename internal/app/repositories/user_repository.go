package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/pkg/apperrors"
	"github.com/ozank/collegium/internal/pkg/dberrors"
)

// UserRepository handles login accounts.
type UserRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB, logger zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

// Create inserts a new account. Unique violations surface as the sentinel
// for the clashing identifier; only the raw driver error names the
// constraint, so translated errors fall back to the email sentinel.
func (r *UserRepository) Create(ctx context.Context, user *models.AppUser) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		switch {
		case dberrors.IsDuplicateConstraint(err, "idx_users_username"):
			return apperrors.ErrUsernameAlreadyExists
		case dberrors.IsDuplicate(err):
			return apperrors.ErrEmailAlreadyExists
		}
		r.logger.Error().Err(err).Str("email", user.Email).Msg("create user failed")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves an account by id.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.AppUser, error) {
	var user models.AppUser
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &user, nil
}

// GetByEmailOrUsername retrieves an account by either login identifier.
func (r *UserRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.AppUser, error) {
	var user models.AppUser
	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", email, username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &user, nil
}

// EmailExists reports whether an account already uses the email.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AppUser{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return count > 0, nil
}
