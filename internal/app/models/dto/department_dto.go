package dto

import (
	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/query"
)

// DepartmentResponse is the default read view of a department.
type DepartmentResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	MaxStudentCount int    `json:"maxStudentCount"`
	StudentsCount   int64  `json:"studentsCount"`
	ProfessorsCount int64  `json:"professorsCount"`
	CoursesCount    int64  `json:"coursesCount"`
	ExamsCount      int64  `json:"examsCount"`
}

// DepartmentCreateRequest is the write shape for creating a department.
type DepartmentCreateRequest struct {
	Name            string `json:"name" binding:"required,max=70"`
	MaxStudentCount int    `json:"maxStudentCount" binding:"omitempty,gt=0"`
}

// DepartmentUpdateRequest is the write shape for updating a department.
type DepartmentUpdateRequest struct {
	Name            string `json:"name" binding:"omitempty,max=70"`
	MaxStudentCount int    `json:"maxStudentCount" binding:"omitempty,gt=0"`
}

// DepartmentFields maps the exposed department view onto its table.
var DepartmentFields = query.NewFieldMap(
	map[string]string{
		"id":              "id",
		"name":            "name",
		"maxStudentCount": "max_student_count",
	},
	map[string]string{
		"students":   "Students",
		"professors": "Professors",
		"courses":    "Courses",
		"exams":      "Exams",
	},
)

// FromDepartment maps an entity into the default view.
func FromDepartment(d *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:              d.ID,
		Name:            d.Name,
		MaxStudentCount: d.MaxStudentCount,
		StudentsCount:   d.StudentsCount,
		ProfessorsCount: d.ProfessorsCount,
		CoursesCount:    d.CoursesCount,
		ExamsCount:      d.ExamsCount,
	}
}

// ToDepartment maps the create request into a new entity, applying the
// capacity floor.
func (r *DepartmentCreateRequest) ToDepartment() *models.Department {
	department := &models.Department{}
	department.Name = r.Name
	department.SetMaxStudentCount(r.MaxStudentCount)
	return department
}

// MergeInto applies the update request's non-zero fields to the entity.
func (r *DepartmentUpdateRequest) MergeInto(d *models.Department) {
	if r.Name != "" {
		d.Name = r.Name
	}
	if r.MaxStudentCount != 0 {
		d.SetMaxStudentCount(r.MaxStudentCount)
	}
}
