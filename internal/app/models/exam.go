package models

import (
	"time"

	"gorm.io/gorm"
)

// Exam belongs to a department and bounds the grades recorded against it.
type Exam struct {
	BaseModel
	MaxGrade     int         `json:"maxGrade"`
	Duration     float32     `json:"duration"`
	Created      *time.Time  `json:"created,omitempty" gorm:"autoCreateTime"`
	DepartmentID *int        `json:"departmentId,omitempty"`
	Department   *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

func (Exam) TableName() string { return "exams" }

func (e *Exam) BeforeSave(tx *gorm.DB) error {
	return e.ValidateBase()
}

// DepartmentName returns the eager-loaded department name, if any.
func (e *Exam) DepartmentName() string {
	if e.Department == nil {
		return ""
	}
	return e.Department.Name
}
