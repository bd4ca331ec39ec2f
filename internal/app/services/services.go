package services

import (
	"github.com/rs/zerolog"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/repositories"
	"github.com/ozank/collegium/internal/pkg/auth"
)

// Services aggregates every service for dependency wiring. Entities
// without extra semantics ride the generic service directly.
type Services struct {
	Students       *StudentService
	Departments    *DepartmentService
	Professors     *Service[models.Professor]
	Administrators *Service[models.Administrator]
	Courses        *Service[models.Course]
	Exams          *Service[models.Exam]
	Grades         *Service[models.Grade]
	Users          *UserService
}

// NewServices wires all services over the repositories.
func NewServices(repos *repositories.Repositories, jwt *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		Students:       NewStudentService(repos.Students, logger),
		Departments:    NewDepartmentService(repos, logger),
		Professors:     NewService(repos.Professors, dto.ProfessorFields, logger),
		Administrators: NewService(repos.Administrators, dto.AdministratorFields, logger),
		Courses:        NewService(repos.Courses, dto.CourseFields, logger),
		Exams:          NewService(repos.Exams, dto.ExamFields, logger),
		Grades:         NewService(repos.Grades, dto.GradeFields, logger),
		Users:          NewUserService(repos.Users, jwt, logger),
	}
}
