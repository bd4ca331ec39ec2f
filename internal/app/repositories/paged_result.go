package repositories

import "math"

// PagedResult carries one page of entities together with the paging
// arithmetic derived from the total row count.
type PagedResult[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"totalCount"`
	PageSize    int   `json:"pageSize"`
	CurrentPage int   `json:"currentPage"`
}

// TotalPages is ceil(TotalCount / PageSize).
func (p *PagedResult[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.TotalCount) / float64(p.PageSize)))
}

// HasPrevious reports whether a page precedes the current one.
func (p *PagedResult[T]) HasPrevious() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a page follows the current one.
func (p *PagedResult[T]) HasNext() bool {
	return p.CurrentPage < p.TotalPages()
}
