package entity

import "time"

type Category struct {
	Id          *int64
	Name        string
	Description string
	Enabled     bool
	Type        CategoryType
	Products    []*Product // set semantics, see mapper.ProductKey
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
