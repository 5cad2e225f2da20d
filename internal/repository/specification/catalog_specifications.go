package specification

import "gorm.io/gorm"

// ByName is an exact, case-sensitive name match. An empty name matches
// nothing.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	if s.Name == "" {
		return db.Where("1 = 0")
	}
	return db.Where("name = ?", s.Name)
}

type ByNameIgnoreCase struct {
	Name string
}

func (s ByNameIgnoreCase) Apply(db *gorm.DB) *gorm.DB {
	if s.Name == "" {
		return db.Where("1 = 0")
	}
	return db.Where("LOWER(name) = LOWER(?)", s.Name)
}

type ByActive struct {
	Active bool
}

func (s ByActive) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", s.Active)
}

type ByEnabled struct {
	Enabled bool
}

func (s ByEnabled) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("enabled = ?", s.Enabled)
}

// ByCategoryID selects the products attached to a category. A non positive
// id matches nothing.
type ByCategoryID struct {
	CategoryID int64
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	if s.CategoryID <= 0 {
		return db.Where("1 = 0")
	}
	return db.Where("category_id = ?", s.CategoryID)
}

// WithProducts eager loads the product set of a category.
type WithProducts struct{}

func (s WithProducts) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Products", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	})
}
