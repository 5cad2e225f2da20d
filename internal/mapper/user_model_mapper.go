package mapper

import (
	"catalog-be/internal/entity"
	"catalog-be/internal/model"

	"gorm.io/datatypes"
)

type UserModelMapper struct{}

func NewUserModelMapper() *UserModelMapper {
	return &UserModelMapper{}
}

func (m *UserModelMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	roles := make([]entity.Role, 0, len(u.Roles))
	for _, name := range u.Roles {
		// roles no longer declared are ignored rather than failing the load
		if r, err := entity.ParseRole(name); err == nil {
			roles = append(roles, r)
		}
	}
	return &entity.User{
		Id:                 idPtr(u.Id),
		Username:           u.Username,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		Roles:              roles,
		AccountExpired:     u.AccountExpired,
		AccountLocked:      u.AccountLocked,
		CredentialsExpired: u.CredentialsExpired,
		Enabled:            u.Enabled,
		Version:            u.Version,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          timePtr(u.UpdatedAt),
	}
}

func (m *UserModelMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.String())
	}
	return &model.User{
		Id:                 idValue(u.Id),
		Username:           u.Username,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		Roles:              datatypes.NewJSONSlice(roles),
		AccountExpired:     u.AccountExpired,
		AccountLocked:      u.AccountLocked,
		CredentialsExpired: u.CredentialsExpired,
		Enabled:            u.Enabled,
		Version:            u.Version,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          timeValue(u.UpdatedAt),
	}
}

func (m *UserModelMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
