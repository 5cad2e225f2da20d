package specification

import (
	"math"

	"gorm.io/gorm"
)

// ByID filters by ID. An id that was never assigned matches nothing.
type ByID struct {
	ID *int64
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	if s.ID == nil || *s.ID <= 0 {
		return db.Where("1 = 0")
	}
	return db.Where("id = ?", *s.ID)
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest converts a zero based page index and size into a Pagination.
// The size falls back to DefaultPageSize and is capped at MaxPageSize. Pages
// past the last representable offset are clamped to it.
func PageRequest(page, size int) Pagination {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page > math.MaxInt32/size {
		page = math.MaxInt32 / size
	}
	return Pagination{Limit: size, Offset: page * size}
}
