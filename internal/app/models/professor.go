package models

import (
	"time"

	"gorm.io/gorm"
)

// Professor is a person teaching courses for a department.
type Professor struct {
	Person
	HireDate     time.Time   `json:"hireDate" gorm:"autoCreateTime"`
	Salary       float64     `json:"salary"`
	DepartmentID *int        `json:"departmentId,omitempty"`
	Department   *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	Courses      []Course    `json:"courses,omitempty" gorm:"foreignKey:ProfessorID"`
}

func (Professor) TableName() string { return "people" }

// Discriminator implements Discriminated.
func (Professor) Discriminator() string { return PersonTypeProfessor }

func (p *Professor) BeforeSave(tx *gorm.DB) error {
	p.PersonType = PersonTypeProfessor
	return p.ValidateBase()
}
