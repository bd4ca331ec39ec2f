package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/services"
	"github.com/ozank/collegium/internal/middleware"
)

// StudentController handles student endpoints. The plain read surface
// rides the generic resource; enrollment and the code-addressed
// operations are its own.
type StudentController struct {
	*Resource[models.Student, dto.StudentResponse, dto.StudentCreateRequest, dto.StudentUpdateRequest]
	students *services.StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(students *services.StudentService) *StudentController {
	resource := NewResource(
		students.Service,
		dto.FromStudent,
		func(req *dto.StudentCreateRequest) (*models.Student, error) { return req.ToStudent(), nil },
		func(req *dto.StudentUpdateRequest, s *models.Student) error { req.MergeInto(s); return nil },
	)
	return &StudentController{Resource: resource, students: students}
}

// Enroll creates a student with its generated login identity
// @Summary Enroll a new student
// @Description Creates a student together with its crucial information and login account. The generated password appears only in this response.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentCreateRequest true "Student information"
// @Success 201 {object} dto.APIResponse "Student enrolled"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	var req dto.StudentCreateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, credentials, op := c.students.Enroll(ctx.Request.Context(), req)
	if !op.IsSuccess() {
		middleware.HandleOperation(ctx, op)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{
		"student":     dto.FromStudent(student),
		"credentials": credentials,
	}, "student enrolled"))
}

// GetByCode retrieves a student by code
// @Summary Get student by code
// @Description Retrieves a student by its unique student code
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param code path string true "Student code"
// @Param include query string false "Relations to eager-load, comma separated"
// @Success 200 {object} dto.APIResponse "Student retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/code/{code} [get]
func (c *StudentController) GetByCode(ctx *gin.Context) {
	student, op := c.students.GetByCode(ctx.Request.Context(), ctx.Param("code"), queryOptions(ctx).Includes...)
	if !op.IsSuccess() {
		middleware.HandleOperation(ctx, op)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudentDetail(student), ""))
}

// UpdateByCode updates a student addressed by code
// @Summary Update a student
// @Description Applies the request's non-empty fields to the student addressed by studentCode
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentUpdateRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse "Student updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students [put]
func (c *StudentController) UpdateByCode(ctx *gin.Context) {
	var req dto.StudentUpdateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, op := c.students.UpdateByCode(ctx.Request.Context(), req)
	if !op.IsSuccess() {
		middleware.HandleOperation(ctx, op)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudent(student), "student updated"))
}

// DeleteByCode removes a student addressed by code
// @Summary Delete a student
// @Description Removes the student and its crucial information
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param code path string true "Student code"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/code/{code} [delete]
func (c *StudentController) DeleteByCode(ctx *gin.Context) {
	if op := c.students.DeleteByCode(ctx.Request.Context(), ctx.Param("code")); !op.IsSuccess() {
		middleware.HandleOperation(ctx, op)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "student deleted"))
}
