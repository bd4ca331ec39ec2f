package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/query"
	"github.com/ozank/collegium/internal/pkg/apperrors"
)

// Base is the generic data-access layer shared by every entity type. It
// wraps the ORM's set operations and applies the discriminator scope for
// types stored in a shared table.
type Base[T any] struct {
	db     *gorm.DB
	logger zerolog.Logger
	scope  func(*gorm.DB) *gorm.DB
}

// NewBase creates a repository for T. If T is a discriminated type, every
// query is scoped to its type tag automatically.
func NewBase[T any](db *gorm.DB, logger zerolog.Logger) *Base[T] {
	b := &Base[T]{db: db, logger: logger}
	if d, ok := any(new(T)).(models.Discriminated); ok {
		tag := d.Discriminator()
		b.scope = func(tx *gorm.DB) *gorm.DB {
			return tx.Where("person_type = ?", tag)
		}
	}
	return b
}

// DB exposes the underlying handle for transactional composition.
func (r *Base[T]) DB() *gorm.DB { return r.db }

// WithTx returns a repository bound to the given transaction handle.
func (r *Base[T]) WithTx(tx *gorm.DB) *Base[T] {
	return &Base[T]{db: tx, logger: r.logger, scope: r.scope}
}

func (r *Base[T]) query(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx).Model(new(T))
	if r.scope != nil {
		db = r.scope(db)
	}
	return db
}

// Create inserts a new entity.
func (r *Base[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		r.logger.Error().Err(err).Msg("create failed")
		return fmt.Errorf("error creating record: %w", err)
	}
	return nil
}

// CreateRange inserts a batch of entities.
func (r *Base[T]) CreateRange(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(entities).Error; err != nil {
		r.logger.Error().Err(err).Int("count", len(entities)).Msg("batch create failed")
		return fmt.Errorf("error creating records: %w", err)
	}
	return nil
}

// Update persists the entity's current state by primary key.
func (r *Base[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		r.logger.Error().Err(err).Msg("update failed")
		return fmt.Errorf("error updating record: %w", err)
	}
	return nil
}

// UpdateRange persists a batch of entities.
func (r *Base[T]) UpdateRange(ctx context.Context, entities []*T) error {
	for _, entity := range entities {
		if err := r.Update(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// DeleteByID removes the entity with the given id. A missing row is
// reported as a not-found error, never a panic.
func (r *Base[T]) DeleteByID(ctx context.Context, id int) error {
	result := r.query(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		r.logger.Error().Err(result.Error).Int("id", id).Msg("delete failed")
		return fmt.Errorf("error deleting record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// Delete removes the given entity.
func (r *Base[T]) Delete(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		r.logger.Error().Err(err).Msg("delete failed")
		return fmt.Errorf("error deleting record: %w", err)
	}
	return nil
}

// DeleteWhere removes every entity matching the filter.
func (r *Base[T]) DeleteWhere(ctx context.Context, filter *query.Filter) error {
	if filter.Empty() {
		return apperrors.NewBadRequestError("refusing to delete without conditions")
	}
	if err := filter.Apply(r.query(ctx)).Delete(new(T)).Error; err != nil {
		r.logger.Error().Err(err).Msg("conditional delete failed")
		return fmt.Errorf("error deleting records: %w", err)
	}
	return nil
}

// DeleteRange removes a batch of entities.
func (r *Base[T]) DeleteRange(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(entities).Error; err != nil {
		r.logger.Error().Err(err).Int("count", len(entities)).Msg("batch delete failed")
		return fmt.Errorf("error deleting records: %w", err)
	}
	return nil
}

// GetByID retrieves one entity by primary key, eager-loading the given
// relation paths.
func (r *Base[T]) GetByID(ctx context.Context, id int, preloads ...string) (*T, error) {
	db := r.query(ctx)
	for _, path := range preloads {
		db = db.Preload(path)
	}

	var entity T
	err := db.Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		r.logger.Error().Err(err).Int("id", id).Msg("get by id failed")
		return nil, fmt.Errorf("error retrieving record: %w", err)
	}
	return &entity, nil
}

// GetWhere retrieves the first entity matching the spec.
func (r *Base[T]) GetWhere(ctx context.Context, spec query.Spec) (*T, error) {
	var entity T
	err := spec.Apply(r.query(ctx)).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		r.logger.Error().Err(err).Msg("get by conditions failed")
		return nil, fmt.Errorf("error retrieving record: %w", err)
	}
	return &entity, nil
}

// GetAll retrieves every entity matching the spec.
func (r *Base[T]) GetAll(ctx context.Context, spec query.Spec) ([]T, error) {
	var entities []T
	if err := spec.Apply(r.query(ctx)).Find(&entities).Error; err != nil {
		r.logger.Error().Err(err).Msg("get all failed")
		return nil, fmt.Errorf("error retrieving records: %w", err)
	}
	return entities, nil
}

// GetAllPaged retrieves one page of entities matching the spec, together
// with the total count taken before offsetting.
func (r *Base[T]) GetAllPaged(ctx context.Context, spec query.Spec, page, size int) (*PagedResult[T], error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	var total int64
	if err := spec.Filter.Apply(r.query(ctx)).Count(&total).Error; err != nil {
		r.logger.Error().Err(err).Msg("paged count failed")
		return nil, fmt.Errorf("error counting records: %w", err)
	}

	var entities []T
	err := spec.Apply(r.query(ctx)).
		Offset((page - 1) * size).
		Limit(size).
		Find(&entities).Error
	if err != nil {
		r.logger.Error().Err(err).Int("page", page).Msg("paged fetch failed")
		return nil, fmt.Errorf("error retrieving page: %w", err)
	}

	return &PagedResult[T]{
		Items:       entities,
		TotalCount:  total,
		PageSize:    size,
		CurrentPage: page,
	}, nil
}

// Exists reports whether any entity matches the filter, without
// materializing rows.
func (r *Base[T]) Exists(ctx context.Context, filter *query.Filter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of entities matching the filter.
func (r *Base[T]) Count(ctx context.Context, filter *query.Filter) (int64, error) {
	var count int64
	if err := filter.Apply(r.query(ctx)).Count(&count).Error; err != nil {
		r.logger.Error().Err(err).Msg("count failed")
		return 0, fmt.Errorf("error counting records: %w", err)
	}
	return count, nil
}
