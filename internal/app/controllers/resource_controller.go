package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/services"
	"github.com/ozank/collegium/internal/middleware"
	"github.com/ozank/collegium/internal/pkg/results"
)

// Resource is the generic CRUD surface over one entity type. Each instance
// binds a service to one DTO view and one pair of write shapes, so every
// plain resource gets listing, filtering, paging, lookup and the full
// write set from the same handler code.
type Resource[T any, D any, C any, U any] struct {
	service *services.Service[T]
	view    services.View[T, D]
	create  func(*C) (*T, error)
	merge   func(*U, *T) error
}

// NewResource creates a resource controller. create maps the bound create
// request into a new entity; merge applies the bound update request to a
// loaded one. Either may reject its input with an error.
func NewResource[T any, D any, C any, U any](
	service *services.Service[T],
	view services.View[T, D],
	create func(*C) (*T, error),
	merge func(*U, *T) error,
) *Resource[T, D, C, U] {
	return &Resource[T, D, C, U]{service: service, view: view, create: create, merge: merge}
}

// List retrieves entities matching the query parameters. With page or
// pageSize present the payload is a page envelope, otherwise a plain list.
func (r *Resource[T, D, C, U]) List(c *gin.Context) {
	opts := queryOptions(c)

	if page, size, requested := paging(c); requested {
		result, op := r.service.GetAllPaged(c.Request.Context(), opts, page, size)
		if !op.IsSuccess() {
			middleware.HandleOperation(c, op)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(services.ProjectPage(result, r.view), ""))
		return
	}

	entities, op := r.service.GetAll(c.Request.Context(), opts)
	if !op.IsSuccess() {
		middleware.HandleOperation(c, op)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(services.ProjectAll(entities, r.view), ""))
}

// Get retrieves one entity by id, honoring include parameters.
func (r *Resource[T, D, C, U]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entity, op := r.service.Get(c.Request.Context(), id, queryOptions(c).Includes...)
	if !op.IsSuccess() {
		middleware.HandleOperation(c, op)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(services.Project(entity, r.view), ""))
}

// Create inserts a new entity from the bound request body.
func (r *Resource[T, D, C, U]) Create(c *gin.Context) {
	var req C
	if !middleware.BindJSON(c, &req) {
		return
	}

	entity, err := r.create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(results.CodeValidationFailed, err.Error(), results.LevelImportant))
		return
	}

	if op := r.service.Create(c.Request.Context(), entity); !op.IsSuccess() {
		middleware.HandleOperation(c, op)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(services.Project(entity, r.view), ""))
}

// CreateMany inserts a batch of entities from a bound request array.
func (r *Resource[T, D, C, U]) CreateMany(c *gin.Context) {
	var reqs []C
	if !middleware.BindJSON(c, &reqs) {
		return
	}

	entities := make([]*T, 0, len(reqs))
	for i := range reqs {
		entity, err := r.create(&reqs[i])
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(results.CodeValidationFailed, err.Error(), results.LevelImportant))
			return
		}
		entities = append(entities, entity)
	}

	if op := r.service.CreateMany(c.Request.Context(), entities); !op.IsSuccess() {
		middleware.HandleOperation(c, op)
		return
	}

	views := make([]D, 0, len(entities))
	for _, entity := range entities {
		views = append(views, services.Project(entity, r.view))
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(views, ""))
}

// Update applies the bound request body to the entity with the given id.
func (r *Resource[T, D, C, U]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req U
	if !middleware.BindJSON(c, &req) {
		return
	}

	op := r.service.Update(c.Request.Context(), id, func(entity *T) error {
		return r.merge(&req, entity)
	})
	if !op.IsSuccess() {
		middleware.HandleOperation(c, op)
		return
	}

	entity, op := r.service.Get(c.Request.Context(), id)
	if !op.IsSuccess() {
		middleware.HandleOperation(c, op)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(services.Project(entity, r.view), ""))
}

// Delete removes the entity with the given id.
func (r *Resource[T, D, C, U]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if op := r.service.Delete(c.Request.Context(), id); !op.IsSuccess() {
		middleware.HandleOperation(c, op)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "deleted"))
}

// Count returns how many entities match the filter parameter.
func (r *Resource[T, D, C, U]) Count(c *gin.Context) {
	count, op := r.service.Count(c.Request.Context(), c.Query("query"))
	if !op.IsSuccess() {
		middleware.HandleOperation(c, op)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"count": count}, ""))
}
