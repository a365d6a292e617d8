package types

// Pagination represents pagination metadata for a rendered list.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

func NewPagination(total uint64, page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}
	return Pagination{TotalCount: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// Visible reports whether pagination controls are rendered at all: only when
// the rows do not fit in one page.
func (p Pagination) Visible() bool {
	return p.TotalCount > 0 && p.TotalCount > uint64(p.Limit)
}

func (p Pagination) Pages() []int {
	pages := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }

func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// ListResult is one fetched page of rows plus its metadata.
type ListResult[T any] struct {
	Rows       []T
	Pagination Pagination
}
