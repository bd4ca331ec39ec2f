package dto

import (
	"time"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/query"
)

// ExamResponse is the default read view of an exam.
type ExamResponse struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	MaxGrade       int        `json:"maxGrade"`
	Duration       float32    `json:"duration"`
	Created        *time.Time `json:"created,omitempty"`
	DepartmentID   *int       `json:"departmentId,omitempty"`
	DepartmentName string     `json:"departmentName,omitempty"`
}

// ExamCreateRequest is the write shape for creating an exam.
type ExamCreateRequest struct {
	Name         string  `json:"name" binding:"required,max=70"`
	MaxGrade     int     `json:"maxGrade" binding:"required,gt=0"`
	Duration     float32 `json:"duration" binding:"required,gt=0"`
	DepartmentID *int    `json:"departmentId" binding:"required,gt=0"`
}

// ExamUpdateRequest is the write shape for updating an exam.
type ExamUpdateRequest struct {
	Name     string  `json:"name" binding:"omitempty,max=70"`
	MaxGrade int     `json:"maxGrade" binding:"omitempty,gt=0"`
	Duration float32 `json:"duration" binding:"omitempty,gt=0"`
}

// ExamFields maps the exposed exam view onto its table.
var ExamFields = query.NewFieldMap(
	map[string]string{
		"id":           "id",
		"name":         "name",
		"maxGrade":     "max_grade",
		"duration":     "duration",
		"departmentId": "department_id",
	},
	map[string]string{
		"department": "Department",
	},
)

// FromExam maps an entity into the default view.
func FromExam(e *models.Exam) ExamResponse {
	return ExamResponse{
		ID:             e.ID,
		Name:           e.Name,
		MaxGrade:       e.MaxGrade,
		Duration:       e.Duration,
		Created:        e.Created,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName(),
	}
}

// ToExam maps the create request into a new entity.
func (r *ExamCreateRequest) ToExam() *models.Exam {
	exam := &models.Exam{
		MaxGrade:     r.MaxGrade,
		Duration:     r.Duration,
		DepartmentID: r.DepartmentID,
	}
	exam.Name = r.Name
	return exam
}

// MergeInto applies the update request's non-zero fields to the entity.
func (r *ExamUpdateRequest) MergeInto(e *models.Exam) {
	if r.Name != "" {
		e.Name = r.Name
	}
	if r.MaxGrade != 0 {
		e.MaxGrade = r.MaxGrade
	}
	if r.Duration != 0 {
		e.Duration = r.Duration
	}
}
