package entity

import "time"

type User struct {
	Id                 *int64
	Username           string
	Email              string
	PasswordHash       string
	Roles              []Role
	AccountExpired     bool
	AccountLocked      bool
	CredentialsExpired bool
	Enabled            bool
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

func (u *User) IsAdmin() bool {
	return u.HasAnyRole(RoleAdmin)
}

func (u *User) HasAnyRole(roles ...Role) bool {
	for _, have := range u.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// CanAuthenticate mirrors the account state checks done at login.
func (u *User) CanAuthenticate() bool {
	return u.Enabled && !u.AccountLocked && !u.AccountExpired && !u.CredentialsExpired
}

// Session is a refresh token issued at login.
type Session struct {
	Token     string    `json:"token"`
	UserId    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Roles     []Role    `json:"roles"`
	ExpiresAt time.Time `json:"expires_at"`
}
