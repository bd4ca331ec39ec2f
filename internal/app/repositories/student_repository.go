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

// StudentRepository extends the generic repository with code-addressed
// lookups and the transactional create that keeps a student, its crucial
// information and its login account consistent.
type StudentRepository struct {
	*Base[models.Student]
	logger zerolog.Logger
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *gorm.DB, logger zerolog.Logger) *StudentRepository {
	return &StudentRepository{
		Base:   NewBase[models.Student](db, logger),
		logger: logger,
	}
}

// CodeExists reports whether a student code is already taken.
func (r *StudentRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.DB().WithContext(ctx).
		Model(&models.Student{}).
		Where("person_type = ? AND student_code = ?", models.PersonTypeStudent, code).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error checking student code: %w", err)
	}
	return count > 0, nil
}

// GetCrucialInformation retrieves the crucial information record for a
// student code.
func (r *StudentRepository) GetCrucialInformation(ctx context.Context, code string) (*models.StudentCrucialInformation, error) {
	var info models.StudentCrucialInformation
	err := r.DB().WithContext(ctx).Where("student_code = ?", code).First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving crucial information: %w", err)
	}
	return &info, nil
}

// CreateWithDependents inserts the student, its crucial information and
// its login account inside one transaction, so a partial failure cannot
// leave an orphaned student without its dependent records.
func (r *StudentRepository) CreateWithDependents(
	ctx context.Context,
	student *models.Student,
	info *models.StudentCrucialInformation,
	user *models.AppUser,
) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(student).Error; err != nil {
			if dberrors.IsDuplicate(err) {
				return apperrors.ErrStudentCodeExists
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		info.StudentID = student.ID
		if err := tx.Create(info).Error; err != nil {
			return fmt.Errorf("error creating crucial information: %w", err)
		}

		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("error creating student account: %w", err)
		}
		return nil
	})
}

// DeleteByCode removes a student and, through the cascade, its crucial
// information.
func (r *StudentRepository) DeleteByCode(ctx context.Context, code string) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student models.Student
		err := tx.Where("person_type = ? AND student_code = ?", models.PersonTypeStudent, code).
			First(&student).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error retrieving student: %w", err)
		}

		if err := tx.Where("student_code = ?", code).
			Delete(&models.StudentCrucialInformation{}).Error; err != nil {
			return fmt.Errorf("error deleting crucial information: %w", err)
		}

		if err := tx.Delete(&student).Error; err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}
		return nil
	})
}
