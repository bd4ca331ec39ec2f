package models

import "gorm.io/gorm"

// DefaultMaxStudentCount is the capacity floor for departments.
const DefaultMaxStudentCount = 100

// Department owns students, professors, courses and exams. Its capacity is
// never persisted below the default: any attempted value of 25 or less is
// silently corrected to 100 rather than rejected.
type Department struct {
	BaseModel
	MaxStudentCount int `json:"maxStudentCount"`

	Professors []Professor `json:"professors,omitempty" gorm:"foreignKey:DepartmentID"`
	Students   []Student   `json:"students,omitempty" gorm:"foreignKey:DepartmentID"`
	Courses    []Course    `json:"courses,omitempty" gorm:"foreignKey:DepartmentID"`
	Exams      []Exam      `json:"exams,omitempty" gorm:"foreignKey:DepartmentID"`

	ProfessorsCount int64 `json:"professorsCount" gorm:"-"`
	StudentsCount   int64 `json:"studentsCount" gorm:"-"`
	CoursesCount    int64 `json:"coursesCount" gorm:"-"`
	ExamsCount      int64 `json:"examsCount" gorm:"-"`
}

func (Department) TableName() string { return "departments" }

// SetMaxStudentCount applies the capacity floor.
func (d *Department) SetMaxStudentCount(value int) {
	if value <= 25 {
		value = DefaultMaxStudentCount
	}
	d.MaxStudentCount = value
}

// BeforeSave enforces the capacity floor on every persistence path.
func (d *Department) BeforeSave(tx *gorm.DB) error {
	if d.MaxStudentCount <= 25 {
		d.MaxStudentCount = DefaultMaxStudentCount
	}
	return d.ValidateBase()
}
