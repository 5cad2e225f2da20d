package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	Id          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;type:varchar(80);not null;uniqueIndex"`
	Description string          `gorm:"column:description;type:varchar(255)"`
	Quantity    int64           `gorm:"column:quantity;not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(19,2);not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(19,2);not null"`
	IsActive    bool            `gorm:"column:is_active;not null"`
	ImageURL    *string         `gorm:"column:image_url;type:varchar(255)"`
	CategoryId  *int64          `gorm:"column:category_id;index"`
	Version     int64           `gorm:"column:optlock;not null"`
	CreatedAt   time.Time       `gorm:"column:created_time;autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"column:updated_time;autoUpdateTime:false"`
}

func (Product) TableName() string {
	return "t_products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Version = 0
	return nil
}
