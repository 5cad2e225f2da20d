package model

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	Id           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(80);not null;uniqueIndex"`
	Description  string    `gorm:"column:description;type:varchar(255);not null"`
	Enabled      bool      `gorm:"column:enabled;not null"`
	CategoryType string    `gorm:"column:category_type;type:varchar(40);not null"`
	Products     []Product `gorm:"foreignKey:CategoryId;references:Id"`
	Version      int64     `gorm:"column:optlock;not null"`
	CreatedAt    time.Time `gorm:"column:created_time;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"column:updated_time;autoUpdateTime:false"`
}

func (Category) TableName() string {
	return "t_categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.Version = 0
	return nil
}
