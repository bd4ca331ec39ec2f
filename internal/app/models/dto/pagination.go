package dto

// Page is one page of DTO values together with paging arithmetic.
type Page[D any] struct {
	Items       []D   `json:"items"`
	TotalCount  int64 `json:"totalCount"`
	PageSize    int   `json:"pageSize"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}
