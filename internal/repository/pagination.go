package repository

// PageMeta defines the structure for pagination metadata.
type PageMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// Page defines the structure for a paginated list of any type.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPage creates a new Page.
func NewPage[T any](data []T, totalItems int64, page, perPage int) *Page[T] {
	if perPage <= 0 {
		perPage = 1
	}
	return &Page[T]{
		Data: data,
		Meta: PageMeta{
			TotalItems:  totalItems,
			TotalPages:  (int(totalItems) + perPage - 1) / perPage,
			CurrentPage: page,
			PageSize:    perPage,
		},
	}
}
