package mapper

import (
	"sort"

	"catalog-be/internal/dto"
	"catalog-be/internal/entity"
	"catalog-be/internal/pkg/serverutils"
)

// UserMapper never copies the password hash in either direction; it is set
// by the auth service only.
type UserMapper struct {
	*GenericObjectMapper[entity.User, dto.UserDTO]
}

func NewUserMapper() *UserMapper {
	m := &UserMapper{}
	m.GenericObjectMapper = NewGenericObjectMapper(m.toEntity, m.toDTO)
	return m
}

func (m *UserMapper) toEntity(d *dto.UserDTO) (*entity.User, error) {
	roles := make([]entity.Role, 0, len(d.Roles))
	for _, name := range d.Roles {
		r, err := entity.ParseRole(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}

	return &entity.User{
		Id:       copyId(d.Id),
		Username: d.Username,
		Email:    d.Email,
		Roles:    distinctRoles(roles),
		Enabled:  d.Enabled,
	}, nil
}

func (m *UserMapper) toDTO(u *entity.User) (*dto.UserDTO, error) {
	roles := distinctRoles(u.Roles)
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}

	return dto.NewUserDTOBuilder().
		Id(copyId(u.Id)).
		Username(u.Username).
		Email(u.Email).
		Roles(names).
		Enabled(u.Enabled).
		CreatedAt(u.CreatedAt).
		Build(), nil
}

// distinctRoles collapses duplicates and sorts so the output is stable.
func distinctRoles(roles []entity.Role) []entity.Role {
	out := serverutils.SetToList(serverutils.ListToSet(roles))
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
