package services

import (
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/repositories"
)

// A View projects one entity into one DTO shape. Callers pick the view at
// the call site, so the same service can feed several response shapes
// without sharing mutable state between them.
type View[T any, D any] func(*T) D

// Project maps one entity through the view.
func Project[T any, D any](entity *T, view View[T, D]) D {
	return view(entity)
}

// ProjectAll maps a slice of entities through the view.
func ProjectAll[T any, D any](entities []T, view View[T, D]) []D {
	items := make([]D, 0, len(entities))
	for i := range entities {
		items = append(items, view(&entities[i]))
	}
	return items
}

// ProjectPage maps a paged result through the view, carrying the paging
// arithmetic along unchanged.
func ProjectPage[T any, D any](page *repositories.PagedResult[T], view View[T, D]) dto.Page[D] {
	return dto.Page[D]{
		Items:       ProjectAll(page.Items, view),
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages(),
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	}
}
