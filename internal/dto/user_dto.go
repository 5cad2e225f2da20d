package dto

import (
	"time"

	"catalog-be/internal/pkg/serverutils"
)

// UserDTO never carries the password hash.
type UserDTO struct {
	Id        *int64     `json:"id,omitempty"`
	Username  string     `json:"username" validate:"required,min=3,max=80"`
	Email     string     `json:"email" validate:"required,email,max=254"`
	Roles     []string   `json:"roles" validate:"omitempty,dive,oneof=ROLE_ADMIN ROLE_MODERATOR ROLE_USER"`
	Enabled   bool       `json:"enabled"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func (d *UserDTO) Validate() error {
	return serverutils.ValidateRequest(d)
}

type UserDTOBuilder struct {
	dto UserDTO
}

func NewUserDTOBuilder() *UserDTOBuilder {
	return &UserDTOBuilder{}
}

func (b *UserDTOBuilder) Id(id *int64) *UserDTOBuilder {
	b.dto.Id = id
	return b
}

func (b *UserDTOBuilder) Username(username string) *UserDTOBuilder {
	b.dto.Username = username
	return b
}

func (b *UserDTOBuilder) Email(email string) *UserDTOBuilder {
	b.dto.Email = email
	return b
}

func (b *UserDTOBuilder) Roles(roles []string) *UserDTOBuilder {
	b.dto.Roles = roles
	return b
}

func (b *UserDTOBuilder) Enabled(enabled bool) *UserDTOBuilder {
	b.dto.Enabled = enabled
	return b
}

func (b *UserDTOBuilder) CreatedAt(createdAt time.Time) *UserDTOBuilder {
	if !createdAt.IsZero() {
		b.dto.CreatedAt = &createdAt
	}
	return b
}

func (b *UserDTOBuilder) Build() *UserDTO {
	out := b.dto
	if b.dto.Roles != nil {
		out.Roles = append([]string(nil), b.dto.Roles...)
	}
	return &out
}
