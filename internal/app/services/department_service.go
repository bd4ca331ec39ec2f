package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/query"
	"github.com/ozank/collegium/internal/app/repositories"
	"github.com/ozank/collegium/internal/pkg/results"
)

// DepartmentService layers membership counting over the generic service.
// The capacity floor itself lives on the model, so it holds on every
// persistence path, not only the ones routed through here.
type DepartmentService struct {
	*Service[models.Department]
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(repos *repositories.Repositories, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		Service: NewService(repos.Departments, dto.DepartmentFields, logger),
		repos:   repos,
		logger:  logger,
	}
}

// FillCounts populates the transient membership counters of a department.
func (s *DepartmentService) FillCounts(ctx context.Context, department *models.Department) results.Operation {
	counts := []struct {
		dest  *int64
		count func(context.Context, *query.Filter) (int64, error)
	}{
		{&department.StudentsCount, s.repos.Students.Count},
		{&department.ProfessorsCount, s.repos.Professors.Count},
		{&department.CoursesCount, s.repos.Courses.Count},
		{&department.ExamsCount, s.repos.Exams.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx, query.Where("department_id = ?", department.ID))
		if err != nil {
			return results.New(s.logger).
				WithStatus(results.StatusFailure).
				WithErrorMessage(results.CodeReadFailed, err.Error(), results.LevelCritical)
		}
		*c.dest = n
	}
	return results.Success(s.logger)
}

// GetWithCounts retrieves a department and fills its membership counters.
func (s *DepartmentService) GetWithCounts(ctx context.Context, id int, includes ...string) (*models.Department, results.Operation) {
	department, op := s.Get(ctx, id, includes...)
	if !op.IsSuccess() {
		return nil, op
	}
	if op := s.FillCounts(ctx, department); !op.IsSuccess() {
		return nil, op
	}
	return department, results.Success(s.logger)
}
