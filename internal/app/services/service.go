package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ozank/collegium/internal/app/query"
	"github.com/ozank/collegium/internal/app/repositories"
	"github.com/ozank/collegium/internal/pkg/apperrors"
	"github.com/ozank/collegium/internal/pkg/results"
)

// Service is the generic application layer over one entity type. Query
// input arrives DTO-shaped (field names as a view exposes them), is
// validated and translated through the view's field map, executed by the
// repository, and handed back as entities for the caller to project into
// whichever DTO view it selected.
//
// Every operation returns its own results.Operation value; expected
// failures (not found, validation, duplicates) never surface as panics or
// raw errors past this layer.
type Service[T any] struct {
	repo   *repositories.Base[T]
	fields query.FieldMap
	logger zerolog.Logger
}

// NewService creates a service over repo using the default view's field map.
func NewService[T any](repo *repositories.Base[T], fields query.FieldMap, logger zerolog.Logger) *Service[T] {
	return &Service[T]{repo: repo, fields: fields, logger: logger}
}

// Repository exposes the underlying repository for domain services that
// need operations beyond the generic surface.
func (s *Service[T]) Repository() *repositories.Base[T] { return s.repo }

func (s *Service[T]) build(opts query.Options) (query.Spec, results.Operation, bool) {
	spec, err := query.Build(opts, s.fields)
	if err != nil {
		op := results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeValidationFailed, err.Error(), results.LevelImportant)
		return query.Spec{}, op, false
	}
	return spec, results.Operation{}, true
}

func (s *Service[T]) readFailure(err error) results.Operation {
	op := results.New(s.logger)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return op.WithStatus(results.StatusFailure).WithError(results.CodeNotFound)
	}
	return op.WithStatus(results.StatusFailure).
		WithErrorMessage(results.CodeReadFailed, err.Error(), results.LevelCritical)
}

// saveFailure maps a persistence error to an operation. Hook rejections
// are validation failures the caller can repair; anything else keeps the
// operation-specific code and is critical.
func (s *Service[T]) saveFailure(code results.Code, err error) results.Operation {
	op := results.New(s.logger).WithStatus(results.StatusFailure)
	if errors.Is(err, apperrors.ErrValidationFailed) || errors.Is(err, apperrors.ErrInvalidSemester) {
		return op.WithErrorMessage(results.CodeValidationFailed, err.Error(), results.LevelImportant)
	}
	return op.WithErrorMessage(code, err.Error(), results.LevelCritical)
}

// Get retrieves one entity by id, eager-loading the requested view
// relations.
func (s *Service[T]) Get(ctx context.Context, id int, includes ...string) (*T, results.Operation) {
	preloads := make([]string, 0, len(includes))
	for _, include := range includes {
		path, err := s.fields.Preload(include)
		if err != nil {
			op := results.New(s.logger).
				WithStatus(results.StatusFailure).
				WithErrorMessage(results.CodeValidationFailed, err.Error(), results.LevelImportant)
			return nil, op
		}
		preloads = append(preloads, path)
	}

	entity, err := s.repo.GetByID(ctx, id, preloads...)
	if err != nil {
		return nil, s.readFailure(err)
	}
	return entity, results.Success(s.logger)
}

// GetByQuery retrieves the first entity matching the DTO-shaped options.
func (s *Service[T]) GetByQuery(ctx context.Context, opts query.Options) (*T, results.Operation) {
	spec, op, ok := s.build(opts)
	if !ok {
		return nil, op
	}

	entity, err := s.repo.GetWhere(ctx, spec)
	if err != nil {
		return nil, s.readFailure(err)
	}
	return entity, results.Success(s.logger)
}

// GetAll retrieves every entity matching the DTO-shaped options.
func (s *Service[T]) GetAll(ctx context.Context, opts query.Options) ([]T, results.Operation) {
	spec, op, ok := s.build(opts)
	if !ok {
		return nil, op
	}

	entities, err := s.repo.GetAll(ctx, spec)
	if err != nil {
		return nil, s.readFailure(err)
	}
	return entities, results.Success(s.logger)
}

// GetAllPaged retrieves one page of entities matching the DTO-shaped
// options. An empty page is a success with an empty items slice.
func (s *Service[T]) GetAllPaged(ctx context.Context, opts query.Options, page, size int) (*repositories.PagedResult[T], results.Operation) {
	spec, op, ok := s.build(opts)
	if !ok {
		return nil, op
	}

	result, err := s.repo.GetAllPaged(ctx, spec, page, size)
	if err != nil {
		return nil, s.readFailure(err)
	}
	return result, results.Success(s.logger)
}

// Create inserts a new entity.
func (s *Service[T]) Create(ctx context.Context, entity *T) results.Operation {
	if err := s.repo.Create(ctx, entity); err != nil {
		return s.saveFailure(results.CodeCreateFailed, err)
	}
	return results.Success(s.logger)
}

// CreateMany inserts a batch of entities.
func (s *Service[T]) CreateMany(ctx context.Context, entities []*T) results.Operation {
	if err := s.repo.CreateRange(ctx, entities); err != nil {
		return s.saveFailure(results.CodeCreateFailed, err)
	}
	return results.Success(s.logger)
}

// Update loads the entity by id, applies merge to it and persists the
// result. A missing id yields a NotFound operation without mutation; a
// merge error is reported as validation failure.
func (s *Service[T]) Update(ctx context.Context, id int, merge func(*T) error) results.Operation {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return results.New(s.logger).
				WithStatus(results.StatusFailure).
				WithError(results.CodeNotFound)
		}
		return results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeReadFailed, err.Error(), results.LevelCritical)
	}

	if err := merge(entity); err != nil {
		return results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeValidationFailed, err.Error(), results.LevelImportant)
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		return s.saveFailure(results.CodeUpdateFailed, err)
	}
	return results.Success(s.logger)
}

// Delete removes the entity with the given id. A missing id yields a
// NotFound operation rather than an error.
func (s *Service[T]) Delete(ctx context.Context, id int) results.Operation {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return results.New(s.logger).
				WithStatus(results.StatusFailure).
				WithError(results.CodeNotFound)
		}
		return results.New(s.logger).
			WithStatus(results.StatusFailure).
			WithErrorMessage(results.CodeDeleteFailed, err.Error(), results.LevelCritical)
	}
	return results.Success(s.logger)
}

// Exists reports whether anything matches the DTO-shaped filter, without
// materializing entities.
func (s *Service[T]) Exists(ctx context.Context, filter string) (bool, results.Operation) {
	spec, op, ok := s.build(query.Options{Filter: filter})
	if !ok {
		return false, op
	}

	exists, err := s.repo.Exists(ctx, spec.Filter)
	if err != nil {
		return false, s.readFailure(err)
	}
	return exists, results.Success(s.logger)
}

// Count returns how many entities match the DTO-shaped filter.
func (s *Service[T]) Count(ctx context.Context, filter string) (int64, results.Operation) {
	spec, op, ok := s.build(query.Options{Filter: filter})
	if !ok {
		return 0, op
	}

	count, err := s.repo.Count(ctx, spec.Filter)
	if err != nil {
		return 0, s.readFailure(err)
	}
	return count, results.Success(s.logger)
}
