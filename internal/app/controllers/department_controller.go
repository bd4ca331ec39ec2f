package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/services"
	"github.com/ozank/collegium/internal/middleware"
)

// DepartmentController handles department endpoints. Single-department
// reads also fill the membership counters.
type DepartmentController struct {
	*Resource[models.Department, dto.DepartmentResponse, dto.DepartmentCreateRequest, dto.DepartmentUpdateRequest]
	departments *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController.
func NewDepartmentController(departments *services.DepartmentService) *DepartmentController {
	resource := NewResource(
		departments.Service,
		dto.FromDepartment,
		func(req *dto.DepartmentCreateRequest) (*models.Department, error) { return req.ToDepartment(), nil },
		func(req *dto.DepartmentUpdateRequest, d *models.Department) error { req.MergeInto(d); return nil },
	)
	return &DepartmentController{Resource: resource, departments: departments}
}

// Get retrieves a department with its membership counters
// @Summary Get department by ID
// @Description Retrieves a department with its student, professor, course and exam counts
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param include query string false "Relations to eager-load, comma separated"
// @Success 200 {object} dto.APIResponse "Department retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid department ID"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	department, op := c.departments.GetWithCounts(ctx.Request.Context(), id, queryOptions(ctx).Includes...)
	if !op.IsSuccess() {
		middleware.HandleOperation(ctx, op)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromDepartment(department), ""))
}
