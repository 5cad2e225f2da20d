package specification

import "gorm.io/gorm"

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	if s.Email == "" {
		return db.Where("1 = 0")
	}
	return db.Where("email = ?", s.Email)
}

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	if s.Username == "" {
		return db.Where("1 = 0")
	}
	return db.Where("user_name = ?", s.Username)
}

type EnabledUsers struct{}

func (s EnabledUsers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("enabled = ?", true)
}
