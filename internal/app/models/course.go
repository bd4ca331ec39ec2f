package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/ozank/collegium/internal/pkg/apperrors"
)

// Course belongs to a department and optionally a professor. Semester is
// constrained to {1, 2}; assigning anything else fails without mutating
// the course.
type Course struct {
	BaseModel
	StartDate  time.Time    `json:"startDate"`
	EndDate    time.Time    `json:"endDate"`
	CourseCode string       `json:"courseCode" gorm:"size:20"`
	Year       AcademicYear `json:"year"`
	Semester   int          `json:"semester"`

	ProfessorID  *int        `json:"professorId,omitempty"`
	Professor    *Professor  `json:"professor,omitempty" gorm:"foreignKey:ProfessorID"`
	DepartmentID *int        `json:"departmentId,omitempty"`
	Department   *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`

	Students []StudentCourse `json:"students,omitempty" gorm:"foreignKey:CourseID"`

	StudentsCount int64 `json:"studentsCount" gorm:"-"`
}

func (Course) TableName() string { return "courses" }

// ValidSemester reports whether v is an allowed semester value.
func ValidSemester(v int) bool { return v == 1 || v == 2 }

// SetSemester assigns the semester, rejecting values outside {1, 2}.
func (c *Course) SetSemester(v int) error {
	if !ValidSemester(v) {
		return apperrors.ErrInvalidSemester
	}
	c.Semester = v
	return nil
}

// BeforeSave rejects out-of-range semesters on every persistence path.
func (c *Course) BeforeSave(tx *gorm.DB) error {
	if !ValidSemester(c.Semester) {
		return apperrors.ErrInvalidSemester
	}
	return c.ValidateBase()
}

// DepartmentName returns the eager-loaded department name, if any.
func (c *Course) DepartmentName() string {
	if c.Department == nil {
		return ""
	}
	return c.Department.Name
}
