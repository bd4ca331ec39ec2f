package controllers

import (
	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/services"
)

// Controllers aggregates every controller for route wiring. Entities
// without extra endpoint semantics are plain resources.
type Controllers struct {
	Auth        *AuthController
	Students    *StudentController
	Departments *DepartmentController

	Professors     *Resource[models.Professor, dto.ProfessorResponse, dto.ProfessorCreateRequest, dto.ProfessorUpdateRequest]
	Administrators *Resource[models.Administrator, dto.AdministratorResponse, dto.AdministratorCreateRequest, dto.AdministratorUpdateRequest]
	Courses        *Resource[models.Course, dto.CourseResponse, dto.CourseCreateRequest, dto.CourseUpdateRequest]
	Exams          *Resource[models.Exam, dto.ExamResponse, dto.ExamCreateRequest, dto.ExamUpdateRequest]
	Grades         *Resource[models.Grade, dto.GradeResponse, dto.GradeCreateRequest, dto.GradeUpdateRequest]
}

// NewControllers wires all controllers over the services.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:        NewAuthController(svcs.Users),
		Students:    NewStudentController(svcs.Students),
		Departments: NewDepartmentController(svcs.Departments),

		Professors: NewResource(svcs.Professors, dto.FromProfessor,
			func(req *dto.ProfessorCreateRequest) (*models.Professor, error) { return req.ToProfessor(), nil },
			func(req *dto.ProfessorUpdateRequest, p *models.Professor) error { req.MergeInto(p); return nil },
		),
		Administrators: NewResource(svcs.Administrators, dto.FromAdministrator,
			func(req *dto.AdministratorCreateRequest) (*models.Administrator, error) {
				return req.ToAdministrator(), nil
			},
			func(req *dto.AdministratorUpdateRequest, a *models.Administrator) error {
				req.MergeInto(a)
				return nil
			},
		),
		Courses: NewResource(svcs.Courses, dto.FromCourse,
			func(req *dto.CourseCreateRequest) (*models.Course, error) { return req.ToCourse() },
			func(req *dto.CourseUpdateRequest, c *models.Course) error { return req.MergeInto(c) },
		),
		Exams: NewResource(svcs.Exams, dto.FromExam,
			func(req *dto.ExamCreateRequest) (*models.Exam, error) { return req.ToExam(), nil },
			func(req *dto.ExamUpdateRequest, e *models.Exam) error { req.MergeInto(e); return nil },
		),
		Grades: NewResource(svcs.Grades, dto.FromGrade,
			func(req *dto.GradeCreateRequest) (*models.Grade, error) { return req.ToGrade(), nil },
			func(req *dto.GradeUpdateRequest, g *models.Grade) error { req.MergeInto(g); return nil },
		),
	}
}
