package domain

// Page is one materialized slice of a search result.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageElements  int   `json:"page_elements"`
	TotalElements int64 `json:"total_elements"`
}

// NewPage builds a Page over content.
func NewPage[T any](content []T, pageNumber, pageElements int, totalElements int64) *Page[T] {
	return &Page[T]{
		Content:       content,
		PageNumber:    pageNumber,
		PageElements:  pageElements,
		TotalElements: totalElements,
	}
}
