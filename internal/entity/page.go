package entity

// Page is one slice of a paginated result. PageIndex is zero based.
type Page[T any] struct {
	Content   []*T
	PageIndex int
	PageSize  int
	Total     int64
}

func (p *Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
}
