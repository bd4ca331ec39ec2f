package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/repositories"
	"github.com/ozank/collegium/internal/pkg/apperrors"
	"github.com/ozank/collegium/internal/pkg/auth"
	"github.com/ozank/collegium/internal/pkg/results"
)

// UserService handles account registration, login and role lookup.
// Registration always yields the base role; elevated roles are assigned
// out of band.
type UserService struct {
	users  *repositories.UserRepository
	jwt    *auth.JWTService
	logger zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(users *repositories.UserRepository, jwt *auth.JWTService, logger zerolog.Logger) *UserService {
	return &UserService{users: users, jwt: jwt, logger: logger}
}

// Register creates a staff account with the base role.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*models.AppUser, results.Operation) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeReadFailed, err.Error(), results.LevelCritical)
		return nil, op
	}
	if exists {
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithError(results.CodeAccountExists)
		return nil, op
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeCreateFailed, err.Error(), results.LevelCritical)
		return nil, op
	}

	user := &models.AppUser{
		Email:         req.Email,
		Username:      req.Username,
		PasswordHash:  hash,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PhoneNumber:   req.PhoneNumber,
		Role:          models.RoleUser,
		SecurityStamp: uuid.NewString(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			op := results.New(s.logger).
				WithStatus(results.StatusFailure).
				WithError(results.CodeAccountExists)
			return nil, op
		}
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeCreateFailed, err.Error(), results.LevelCritical)
		return nil, op
	}
	return user, results.Success(s.logger)
}

// Login verifies the credentials and issues a bearer token. Unknown
// accounts and bad passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, results.Operation) {
	failure := func() results.Operation {
		return results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithError(results.CodeInvalidCredentials)
	}

	if !req.Valid() {
		return dto.TokenResponse{}, failure()
	}

	user, err := s.users.GetByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return dto.TokenResponse{}, failure()
		}
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeReadFailed, err.Error(), results.LevelCritical)
		return dto.TokenResponse{}, op
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return dto.TokenResponse{}, failure()
	}

	token, expiresIn, err := s.jwt.GenerateToken(user)
	if err != nil {
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeGeneralError, err.Error(), results.LevelCritical)
		return dto.TokenResponse{}, op
	}

	return dto.TokenResponse{
		Token:     token,
		Username:  user.Username,
		ExpiresIn: expiresIn,
	}, results.Success(s.logger)
}

// Roles returns the roles of the account identified by the token claims.
func (s *UserService) Roles(ctx context.Context, userID int) (dto.RolesResponse, results.Operation) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			op := results.New(s.logger).
				WithStatus(results.StatusFailure).
				WithError(results.CodeNotFound)
			return dto.RolesResponse{}, op
		}
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeReadFailed, err.Error(), results.LevelCritical)
		return dto.RolesResponse{}, op
	}
	return dto.RolesResponse{Roles: []string{string(user.Role)}}, results.Success(s.logger)
}
