package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	Id                 int64                       `gorm:"column:id;primaryKey;autoIncrement"`
	Username           string                      `gorm:"column:user_name;type:varchar(80);not null;uniqueIndex"`
	Email              string                      `gorm:"column:email;type:varchar(254);not null;uniqueIndex"`
	PasswordHash       string                      `gorm:"column:user_password;type:varchar(60);not null"`
	Roles              datatypes.JSONSlice[string] `gorm:"column:roles;type:jsonb"`
	AccountExpired     bool                        `gorm:"column:account_expired;not null"`
	AccountLocked      bool                        `gorm:"column:account_locked;not null"`
	CredentialsExpired bool                        `gorm:"column:credentials_expired;not null"`
	Enabled            bool                        `gorm:"column:enabled;not null"`
	Version            int64                       `gorm:"column:optlock;not null"`
	CreatedAt          time.Time                   `gorm:"column:created_time;autoCreateTime:false"`
	UpdatedAt          time.Time                   `gorm:"column:updated_time;autoUpdateTime:false"`
}

func (User) TableName() string {
	return "t_users"
}

// BeforeCreate applies the account defaults of a freshly registered user.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	u.AccountExpired = false
	u.AccountLocked = false
	u.CredentialsExpired = false
	u.Enabled = true
	u.CreatedAt = now
	u.UpdatedAt = now
	u.Version = 0
	return nil
}
