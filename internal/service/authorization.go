package service

import (
	"context"

	"catalog-be/internal/apperror"
	"catalog-be/internal/entity"
	"catalog-be/internal/pkg/security"
	"catalog-be/internal/pkg/serverutils"
)

// Operation names a guarded service call. The same names label metrics and
// log lines.
type Operation string

const (
	OpProductSave         Operation = "product.save"
	OpProductUpdate       Operation = "product.update"
	OpProductFindById     Operation = "product.find_by_id"
	OpProductFindByName   Operation = "product.find_by_name"
	OpProductFindIgnoring Operation = "product.find_by_name_ignore_case"
	OpProductExists       Operation = "product.exists_by_name"
	OpProductFindAll      Operation = "product.find_all"
	OpProductFindByActive Operation = "product.find_all_by_active"
	OpProductFilter       Operation = "product.filter_by_name"
	OpProductByCategory   Operation = "product.find_all_by_category"
	OpProductDelete       Operation = "product.delete"

	OpCategoryCreate       Operation = "category.create"
	OpCategoryUpdate       Operation = "category.update"
	OpCategoryFindById     Operation = "category.find_by_id"
	OpCategoryFindByName   Operation = "category.find_by_name"
	OpCategoryFindIgnoring Operation = "category.find_by_name_ignore_case"
	OpCategoryWithProducts Operation = "category.find_with_products_by_name"
	OpCategoryExists       Operation = "category.exists_by_name"
	OpCategoryFindAll      Operation = "category.find_all_by_enabled"
	OpCategoryDelete       Operation = "category.delete"

	OpUserMe             Operation = "user.me"
	OpUserFindByUsername Operation = "user.find_by_username"
	OpUserFindAll        Operation = "user.find_all"
	OpUserDelete         Operation = "user.delete"

	OpAuthRegister Operation = "auth.register"
	OpAuthLogin    Operation = "auth.login"
	OpAuthRefresh  Operation = "auth.refresh"
	OpAuthLogout   Operation = "auth.logout"
)

var (
	writers = []entity.Role{entity.RoleAdmin, entity.RoleModerator}
	readers = []entity.Role{entity.RoleAdmin, entity.RoleModerator, entity.RoleUser}
	admins  = []entity.Role{entity.RoleAdmin}
	anyone  = []entity.Role{}
)

// DefaultPolicy is the role table of the catalog. An empty role list means
// the operation is public.
var DefaultPolicy = map[Operation][]entity.Role{
	OpProductSave:         writers,
	OpProductUpdate:       writers,
	OpProductDelete:       writers,
	OpProductFindById:     readers,
	OpProductFindByName:   readers,
	OpProductFindIgnoring: readers,
	OpProductExists:       readers,
	OpProductFindAll:      readers,
	OpProductFindByActive: readers,
	OpProductFilter:       readers,
	OpProductByCategory:   readers,

	OpCategoryCreate:       writers,
	OpCategoryUpdate:       writers,
	OpCategoryDelete:       writers,
	OpCategoryFindById:     readers,
	OpCategoryFindByName:   readers,
	OpCategoryFindIgnoring: readers,
	OpCategoryWithProducts: readers,
	OpCategoryExists:       readers,
	OpCategoryFindAll:      readers,

	OpUserMe:             readers,
	OpUserFindByUsername: admins,
	OpUserFindAll:        admins,
	OpUserDelete:         admins,

	OpAuthRegister: anyone,
	OpAuthLogin:    anyone,
	OpAuthRefresh:  anyone,
	OpAuthLogout:   anyone,
}

type Authorizer interface {
	Authorize(ctx context.Context, op Operation) error
}

type roleAuthorizer struct {
	policy map[Operation][]entity.Role
}

func NewAuthorizer(policy map[Operation][]entity.Role) Authorizer {
	return &roleAuthorizer{policy: policy}
}

// Authorize passes when the caller holds at least one required role.
// Operations missing from the policy are denied.
func (a *roleAuthorizer) Authorize(ctx context.Context, op Operation) error {
	required, ok := a.policy[op]
	if ok && len(required) == 0 {
		return nil
	}

	held := serverutils.ListToSet(security.RolesFromContext(ctx))
	for _, role := range required {
		if _, found := held[role]; found {
			return nil
		}
	}

	names := make([]string, 0, len(required))
	for _, role := range required {
		names = append(names, role.String())
	}
	return &apperror.AuthorizationError{Operation: string(op), Required: names}
}
