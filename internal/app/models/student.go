package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxStudentCodeLength bounds the generated student code.
const MaxStudentCodeLength = 12

// Student is a person enrolled in a department. Every student owns exactly
// one StudentCrucialInformation row, created with the student and removed
// with it.
type Student struct {
	Person
	DepartmentID *int        `json:"departmentId,omitempty"`
	Department   *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`

	Courses []StudentCourse `json:"courses,omitempty" gorm:"foreignKey:StudentID"`
	Grades  []Grade         `json:"grades,omitempty" gorm:"foreignKey:StudentCode;references:StudentCode"`

	TotalQualityPoints float64 `json:"totalQualityPoints"`
	TotalCreditHours   float64 `json:"totalCreditHours"`

	StudentCode  string       `json:"studentCode" gorm:"size:12;uniqueIndex"`
	BirthDate    time.Time    `json:"birthDate"`
	JoinTime     time.Time    `json:"joinTime" gorm:"autoCreateTime"`
	AcademicYear AcademicYear `json:"academicYear"`

	CrucialInformation *StudentCrucialInformation `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

func (Student) TableName() string { return "people" }

// Discriminator implements Discriminated.
func (Student) Discriminator() string { return PersonTypeStudent }

// BeforeSave stamps the discriminator and enforces base invariants.
func (s *Student) BeforeSave(tx *gorm.DB) error {
	s.PersonType = PersonTypeStudent
	return s.ValidateBase()
}

// DepartmentName returns the eager-loaded department name, if any.
func (s *Student) DepartmentName() string {
	if s.Department == nil {
		return ""
	}
	return s.Department.Name
}

// StudentCourse links students and courses many-to-many.
type StudentCourse struct {
	StudentID int      `json:"studentId" gorm:"primaryKey"`
	CourseID  int      `json:"courseId" gorm:"primaryKey"`
	Student   *Student `json:"-" gorm:"foreignKey:StudentID"`
	Course    *Course  `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

func (StudentCourse) TableName() string { return "student_courses" }

// StudentCrucialInformation holds the generated login identity of a student.
// The password is stored hashed; the plaintext is returned exactly once, at
// creation time.
type StudentCrucialInformation struct {
	StudentCode     string `json:"studentCode" gorm:"primaryKey;size:12"`
	StudentID       int    `json:"studentId"`
	UniversityEmail string `json:"universityEmail"`
	Password        string `json:"-"`
}

func (StudentCrucialInformation) TableName() string { return "student_crucial_information" }
