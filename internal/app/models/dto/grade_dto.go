package dto

import (
	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/query"
)

// GradeResponse is the default read view of a grade.
type GradeResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	ExamID      int     `json:"examId"`
	ExamName    string  `json:"examName,omitempty"`
	StudentCode string  `json:"studentCode"`
	StudentName string  `json:"studentName,omitempty"`
	ExamGrade   float64 `json:"examGrade"`
}

// GradeCreateRequest is the write shape for recording a grade.
type GradeCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=70"`
	ExamID      int     `json:"examId" binding:"required,gt=0"`
	StudentCode string  `json:"studentCode" binding:"required,max=12"`
	ExamGrade   float64 `json:"examGrade" binding:"gte=0"`
}

// GradeUpdateRequest is the write shape for correcting a grade.
type GradeUpdateRequest struct {
	Name      string  `json:"name" binding:"omitempty,max=70"`
	ExamGrade float64 `json:"examGrade" binding:"omitempty,gte=0"`
}

// GradeFields maps the exposed grade view onto its table.
var GradeFields = query.NewFieldMap(
	map[string]string{
		"id":          "id",
		"name":        "name",
		"examId":      "exam_id",
		"studentCode": "student_code",
		"examGrade":   "exam_grade",
	},
	map[string]string{
		"exam":    "Exam",
		"student": "Student",
	},
)

// FromGrade maps an entity into the default view.
func FromGrade(g *models.Grade) GradeResponse {
	return GradeResponse{
		ID:          g.ID,
		Name:        g.Name,
		ExamID:      g.ExamID,
		ExamName:    g.ExamName(),
		StudentCode: g.StudentCode,
		StudentName: g.StudentName(),
		ExamGrade:   g.ExamGrade,
	}
}

// ToGrade maps the create request into a new entity.
func (r *GradeCreateRequest) ToGrade() *models.Grade {
	grade := &models.Grade{
		ExamID:      r.ExamID,
		StudentCode: r.StudentCode,
		ExamGrade:   r.ExamGrade,
	}
	grade.Name = r.Name
	return grade
}

// MergeInto applies the update request's non-zero fields to the entity.
func (r *GradeUpdateRequest) MergeInto(g *models.Grade) {
	if r.Name != "" {
		g.Name = r.Name
	}
	if r.ExamGrade != 0 {
		g.ExamGrade = r.ExamGrade
	}
}
