package dto

import (
	"time"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/query"
)

// ProfessorResponse is the default read view of a professor.
type ProfessorResponse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	PhoneNumber    string    `json:"phoneNumber"`
	Email          string    `json:"email"`
	HireDate       time.Time `json:"hireDate"`
	Salary         float64   `json:"salary"`
	DepartmentID   *int      `json:"departmentId,omitempty"`
	DepartmentName string    `json:"departmentName,omitempty"`
	CoursesCount   int       `json:"coursesCount"`
}

// ProfessorCreateRequest is the write shape for hiring a professor.
type ProfessorCreateRequest struct {
	Name         string  `json:"name" binding:"required,max=70"`
	Age          int     `json:"age" binding:"required,gt=0"`
	PhoneNumber  string  `json:"phoneNumber" binding:"omitempty,max=13"`
	Email        string  `json:"email" binding:"required,email"`
	Salary       float64 `json:"salary" binding:"omitempty,gte=0"`
	DepartmentID *int    `json:"departmentId" binding:"omitempty,gt=0"`
}

// ProfessorUpdateRequest is the write shape for updating a professor.
type ProfessorUpdateRequest struct {
	Name         string  `json:"name" binding:"omitempty,max=70"`
	Age          int     `json:"age" binding:"omitempty,gt=0"`
	PhoneNumber  string  `json:"phoneNumber" binding:"omitempty,max=13"`
	Email        string  `json:"email" binding:"omitempty,email"`
	Salary       float64 `json:"salary" binding:"omitempty,gte=0"`
	DepartmentID *int    `json:"departmentId" binding:"omitempty,gt=0"`
}

// ProfessorFields maps the exposed professor view onto the people table.
var ProfessorFields = query.NewFieldMap(
	map[string]string{
		"id":           "id",
		"name":         "name",
		"age":          "age",
		"phoneNumber":  "phone_number",
		"email":        "email",
		"salary":       "salary",
		"departmentId": "department_id",
	},
	map[string]string{
		"department": "Department",
		"courses":    "Courses",
		"address":    "Address",
	},
)

// FromProfessor maps an entity into the default view.
func FromProfessor(p *models.Professor) ProfessorResponse {
	resp := ProfessorResponse{
		ID:           p.ID,
		Name:         p.Name,
		Age:          p.Age,
		PhoneNumber:  p.PhoneNumber,
		Email:        p.Email,
		HireDate:     p.HireDate,
		Salary:       p.Salary,
		DepartmentID: p.DepartmentID,
		CoursesCount: len(p.Courses),
	}
	if p.Department != nil {
		resp.DepartmentName = p.Department.Name
	}
	return resp
}

// ToProfessor maps the create request into a new entity.
func (r *ProfessorCreateRequest) ToProfessor() *models.Professor {
	professor := &models.Professor{
		Salary:       r.Salary,
		DepartmentID: r.DepartmentID,
	}
	professor.Name = r.Name
	professor.Age = r.Age
	professor.PhoneNumber = r.PhoneNumber
	professor.Email = r.Email
	return professor
}

// MergeInto applies the update request's non-zero fields to the entity.
func (r *ProfessorUpdateRequest) MergeInto(p *models.Professor) {
	if r.Name != "" {
		p.Name = r.Name
	}
	if r.Age != 0 {
		p.Age = r.Age
	}
	if r.PhoneNumber != "" {
		p.PhoneNumber = r.PhoneNumber
	}
	if r.Email != "" {
		p.Email = r.Email
	}
	if r.Salary != 0 {
		p.Salary = r.Salary
	}
	if r.DepartmentID != nil {
		p.DepartmentID = r.DepartmentID
	}
}
