package entity

import "catalog-be/internal/apperror"

type Role string

const (
	RoleAdmin     Role = "ROLE_ADMIN"
	RoleModerator Role = "ROLE_MODERATOR"
	RoleUser      Role = "ROLE_USER"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleModerator, RoleUser:
		return Role(s), nil
	}
	return "", &apperror.UnrecognizedEnumValue{Enum: "Role", Value: s}
}

func (r Role) String() string {
	return string(r)
}
