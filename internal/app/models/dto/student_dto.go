package dto

import (
	"time"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/query"
)

// StudentResponse is the default read view of a student.
type StudentResponse struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Age                int       `json:"age"`
	PhoneNumber        string    `json:"phoneNumber"`
	Email              string    `json:"email"`
	StudentCode        string    `json:"studentCode"`
	DepartmentID       *int      `json:"departmentId,omitempty"`
	DepartmentName     string    `json:"departmentName,omitempty"`
	AcademicYear       int       `json:"academicYear"`
	TotalQualityPoints float64   `json:"totalQualityPoints"`
	TotalCreditHours   float64   `json:"totalCreditHours"`
	JoinTime           time.Time `json:"joinTime"`
	CoursesCount       int       `json:"coursesCount"`
}

// StudentDetailResponse adds the eager-loadable relation payloads.
type StudentDetailResponse struct {
	StudentResponse
	Address *models.Address `json:"address,omitempty"`
	Grades  []models.Grade  `json:"grades,omitempty"`
}

// StudentCreateRequest is the write shape for enrolling a student.
type StudentCreateRequest struct {
	Name         string    `json:"name" binding:"required,max=70"`
	Age          int       `json:"age" binding:"required,gt=0"`
	PhoneNumber  string    `json:"phoneNumber" binding:"omitempty,max=13"`
	Email        string    `json:"email" binding:"required,email"`
	DepartmentID *int      `json:"departmentId" binding:"omitempty,gt=0"`
	AcademicYear int       `json:"academicYear" binding:"omitempty,min=1,max=4"`
	BirthDate    time.Time `json:"birthDate" binding:"required"`
}

// StudentUpdateRequest is the write shape for updating a student,
// addressed by code. Zero-valued fields are left untouched.
type StudentUpdateRequest struct {
	StudentCode  string `json:"studentCode" binding:"required,max=12"`
	Name         string `json:"name" binding:"omitempty,max=70"`
	Age          int    `json:"age" binding:"omitempty,gt=0"`
	PhoneNumber  string `json:"phoneNumber" binding:"omitempty,max=13"`
	Email        string `json:"email" binding:"omitempty,email"`
	DepartmentID *int   `json:"departmentId" binding:"omitempty,gt=0"`
	AcademicYear int    `json:"academicYear" binding:"omitempty,min=1,max=4"`
}

// StudentCredentialsResponse is returned once, when the student is
// created, carrying the generated login identity.
type StudentCredentialsResponse struct {
	StudentCode     string `json:"studentCode"`
	UniversityEmail string `json:"universityEmail"`
	Password        string `json:"password"`
}

// StudentFields maps the exposed student view onto the people table.
var StudentFields = query.NewFieldMap(
	map[string]string{
		"id":                 "id",
		"name":               "name",
		"age":                "age",
		"phoneNumber":        "phone_number",
		"email":              "email",
		"studentCode":        "student_code",
		"departmentId":       "department_id",
		"academicYear":       "academic_year",
		"totalQualityPoints": "total_quality_points",
		"totalCreditHours":   "total_credit_hours",
	},
	map[string]string{
		"department": "Department",
		"address":    "Address",
		"grades":     "Grades",
		"courses":    "Courses.Course",
	},
)

// FromStudent maps an entity into the default view.
func FromStudent(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Age:                s.Age,
		PhoneNumber:        s.PhoneNumber,
		Email:              s.Email,
		StudentCode:        s.StudentCode,
		DepartmentID:       s.DepartmentID,
		DepartmentName:     s.DepartmentName(),
		AcademicYear:       int(s.AcademicYear),
		TotalQualityPoints: s.TotalQualityPoints,
		TotalCreditHours:   s.TotalCreditHours,
		JoinTime:           s.JoinTime,
		CoursesCount:       len(s.Courses),
	}
}

// FromStudentDetail maps an entity into the detail view.
func FromStudentDetail(s *models.Student) StudentDetailResponse {
	return StudentDetailResponse{
		StudentResponse: FromStudent(s),
		Address:         s.Address,
		Grades:          s.Grades,
	}
}

// ToStudent maps the create request into a new entity.
func (r *StudentCreateRequest) ToStudent() *models.Student {
	student := &models.Student{
		DepartmentID: r.DepartmentID,
		AcademicYear: models.AcademicYear(r.AcademicYear),
		BirthDate:    r.BirthDate,
	}
	student.Name = r.Name
	student.Age = r.Age
	student.PhoneNumber = r.PhoneNumber
	student.Email = r.Email
	return student
}

// MergeInto applies the update request's non-zero fields to the entity.
func (r *StudentUpdateRequest) MergeInto(s *models.Student) {
	if r.Name != "" {
		s.Name = r.Name
	}
	if r.Age != 0 {
		s.Age = r.Age
	}
	if r.PhoneNumber != "" {
		s.PhoneNumber = r.PhoneNumber
	}
	if r.Email != "" {
		s.Email = r.Email
	}
	if r.DepartmentID != nil {
		s.DepartmentID = r.DepartmentID
	}
	if r.AcademicYear != 0 {
		s.AcademicYear = models.AcademicYear(r.AcademicYear)
	}
}
