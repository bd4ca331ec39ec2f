package models

import "gorm.io/gorm"

// Grade records a student's score on an exam. Students are referenced by
// their code rather than their numeric id.
type Grade struct {
	BaseModel
	ExamID      int      `json:"examId"`
	StudentCode string   `json:"studentCode" gorm:"size:12;index"`
	ExamGrade   float64  `json:"examGrade"`
	Exam        *Exam    `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	Student     *Student `json:"student,omitempty" gorm:"foreignKey:StudentCode;references:StudentCode"`
}

func (Grade) TableName() string { return "grades" }

func (g *Grade) BeforeSave(tx *gorm.DB) error {
	return g.ValidateBase()
}

// ExamName returns the eager-loaded exam name, if any.
func (g *Grade) ExamName() string {
	if g.Exam == nil {
		return ""
	}
	return g.Exam.Name
}

// StudentName returns the eager-loaded student name, if any.
func (g *Grade) StudentName() string {
	if g.Student == nil {
		return ""
	}
	return g.Student.Name
}
