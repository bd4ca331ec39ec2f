package dto

import (
	"time"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/query"
	"github.com/ozank/collegium/internal/pkg/apperrors"
)

// CourseResponse is the default read view of a course.
type CourseResponse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	CourseCode     string    `json:"courseCode"`
	Semester       int       `json:"semester"`
	Year           int       `json:"year"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	DepartmentID   *int      `json:"departmentId,omitempty"`
	DepartmentName string    `json:"departmentName,omitempty"`
	ProfessorID    *int      `json:"professorId,omitempty"`
	StudentsCount  int       `json:"studentsCount"`
}

// CourseCreateRequest is the write shape for creating a course.
type CourseCreateRequest struct {
	Name         string    `json:"name" binding:"required,max=70"`
	CourseCode   string    `json:"courseCode" binding:"required,max=20"`
	Semester     int       `json:"semester" binding:"required"`
	Year         int       `json:"year" binding:"omitempty,min=1,max=4"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	DepartmentID *int      `json:"departmentId" binding:"required,gt=0"`
	ProfessorID  *int      `json:"professorId" binding:"omitempty,gt=0"`
}

// CourseUpdateRequest is the write shape for updating a course.
type CourseUpdateRequest struct {
	Name        string `json:"name" binding:"omitempty,max=70"`
	CourseCode  string `json:"courseCode" binding:"omitempty,max=20"`
	Semester    int    `json:"semester" binding:"omitempty"`
	Year        int    `json:"year" binding:"omitempty,min=1,max=4"`
	ProfessorID *int   `json:"professorId" binding:"omitempty,gt=0"`
}

// CourseFields maps the exposed course view onto its table.
var CourseFields = query.NewFieldMap(
	map[string]string{
		"id":           "id",
		"name":         "name",
		"courseCode":   "course_code",
		"semester":     "semester",
		"year":         "year",
		"departmentId": "department_id",
		"professorId":  "professor_id",
	},
	map[string]string{
		"department": "Department",
		"professor":  "Professor",
		"students":   "Students.Student",
	},
)

// FromCourse maps an entity into the default view.
func FromCourse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:             c.ID,
		Name:           c.Name,
		CourseCode:     c.CourseCode,
		Semester:       c.Semester,
		Year:           int(c.Year),
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		DepartmentID:   c.DepartmentID,
		DepartmentName: c.DepartmentName(),
		ProfessorID:    c.ProfessorID,
		StudentsCount:  len(c.Students),
	}
}

// ToCourse maps the create request into a new entity. The semester is
// assigned through the validating setter.
func (r *CourseCreateRequest) ToCourse() (*models.Course, error) {
	course := &models.Course{
		CourseCode:   r.CourseCode,
		Year:         models.AcademicYear(r.Year),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		DepartmentID: r.DepartmentID,
		ProfessorID:  r.ProfessorID,
	}
	course.Name = r.Name
	if err := course.SetSemester(r.Semester); err != nil {
		return nil, err
	}
	return course, nil
}

// MergeInto applies the update request's non-zero fields to the entity.
// An out-of-range semester fails before anything is mutated.
func (r *CourseUpdateRequest) MergeInto(c *models.Course) error {
	if r.Semester != 0 && !models.ValidSemester(r.Semester) {
		return apperrors.ErrInvalidSemester
	}
	if r.Name != "" {
		c.Name = r.Name
	}
	if r.CourseCode != "" {
		c.CourseCode = r.CourseCode
	}
	if r.Semester != 0 {
		c.Semester = r.Semester
	}
	if r.Year != 0 {
		c.Year = models.AcademicYear(r.Year)
	}
	if r.ProfessorID != nil {
		c.ProfessorID = r.ProfessorID
	}
	return nil
}
