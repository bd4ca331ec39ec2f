package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/query"
	"github.com/ozank/collegium/internal/app/repositories"
	"github.com/ozank/collegium/internal/pkg/apperrors"
	"github.com/ozank/collegium/internal/pkg/auth"
	"github.com/ozank/collegium/internal/pkg/helpers"
	"github.com/ozank/collegium/internal/pkg/results"
)

// codeAttempts bounds the generate-and-check loop for student codes.
const codeAttempts = 10

// StudentService layers enrollment semantics over the generic service:
// unique code generation, the one-time credential hand-out and the
// transactional create of student, crucial information and login account.
type StudentService struct {
	*Service[models.Student]
	students *repositories.StudentRepository
	logger   zerolog.Logger
}

// NewStudentService creates a new student service.
func NewStudentService(students *repositories.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		Service:  NewService(students.Base, dto.StudentFields, logger),
		students: students,
		logger:   logger,
	}
}

// Enroll creates a student together with its crucial information and login
// account in one transaction. The generated plaintext password appears in
// the returned credentials and nowhere else; the store keeps only hashes.
func (s *StudentService) Enroll(ctx context.Context, req dto.StudentCreateRequest) (*models.Student, dto.StudentCredentialsResponse, results.Operation) {
	student := req.ToStudent()
	if err := student.ValidateBase(); err != nil {
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeValidationFailed, err.Error(), results.LevelImportant)
		return nil, dto.StudentCredentialsResponse{}, op
	}

	code, err := s.uniqueCode(ctx, student)
	if err != nil {
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeCreateFailed, err.Error(), results.LevelCritical)
		return nil, dto.StudentCredentialsResponse{}, op
	}
	student.StudentCode = code

	email := helpers.UniversityEmail(code)
	password := auth.GeneratePassword(code)
	hash, err := auth.HashPassword(password)
	if err != nil {
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeCreateFailed, err.Error(), results.LevelCritical)
		return nil, dto.StudentCredentialsResponse{}, op
	}

	info := &models.StudentCrucialInformation{
		StudentCode:     code,
		UniversityEmail: email,
		Password:        hash,
	}

	firstName, lastName := splitName(student.Name)
	account := &models.AppUser{
		Email:         email,
		Username:      strings.ToLower(code),
		PasswordHash:  hash,
		FirstName:     firstName,
		LastName:      lastName,
		PhoneNumber:   student.PhoneNumber,
		Role:          models.RoleStudent,
		SecurityStamp: uuid.NewString(),
	}

	if err := s.students.CreateWithDependents(ctx, student, info, account); err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("student enrollment failed")
		if errors.Is(err, apperrors.ErrStudentCodeExists) {
			op := results.New(s.logger).
				WithStatus(results.StatusFailure).
				WithError(results.CodeDuplicate)
			return nil, dto.StudentCredentialsResponse{}, op
		}
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeCreateFailed, err.Error(), results.LevelCritical)
		return nil, dto.StudentCredentialsResponse{}, op
	}

	credentials := dto.StudentCredentialsResponse{
		StudentCode:     code,
		UniversityEmail: email,
		Password:        password,
	}
	return student, credentials, results.Success(s.logger)
}

// uniqueCode generates candidate codes until one is free.
func (s *StudentService) uniqueCode(ctx context.Context, student *models.Student) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := helpers.GenerateStudentCode(student.Age, int(student.AcademicYear))
		taken, err := s.students.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", apperrors.ErrCrucialInfoGeneration
}

// GetByCode retrieves a student by its unique code through the generic
// query path, so includes resolve exactly like on the list surface.
func (s *StudentService) GetByCode(ctx context.Context, code string, includes ...string) (*models.Student, results.Operation) {
	return s.GetByQuery(ctx, query.Options{
		Filter:   "studentCode==" + code,
		Includes: includes,
	})
}

// UpdateByCode applies the request's non-zero fields to the student
// addressed by code.
func (s *StudentService) UpdateByCode(ctx context.Context, req dto.StudentUpdateRequest) (*models.Student, results.Operation) {
	student, op := s.GetByCode(ctx, req.StudentCode)
	if !op.IsSuccess() {
		return nil, op
	}

	req.MergeInto(student)
	if err := s.students.Update(ctx, student); err != nil {
		return nil, s.saveFailure(results.CodeUpdateFailed, err)
	}
	return student, results.Success(s.logger)
}

// DeleteByCode removes the student and, with it, its crucial information.
func (s *StudentService) DeleteByCode(ctx context.Context, code string) results.Operation {
	if err := s.students.DeleteByCode(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return results.New(s.logger).
				WithStatus(results.StatusFailure).
				WithError(results.CodeNotFound)
		}
		return results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeDeleteFailed, err.Error(), results.LevelCritical)
	}
	return results.Success(s.logger)
}

func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	idx := strings.LastIndex(full, " ")
	if idx < 0 {
		return full, ""
	}
	return full[:idx], full[idx+1:]
}
