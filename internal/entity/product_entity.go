package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	Id          *int64 // nil until persisted
	Name        string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Price       decimal.Decimal // Quantity * UnitPrice, derived by the service
	IsActive    bool
	ImageURL    *string
	CategoryId  *int64
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
