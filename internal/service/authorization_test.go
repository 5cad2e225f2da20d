package service

import (
	"context"
	"errors"
	"testing"

	"catalog-be/internal/apperror"
	"catalog-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizerPolicy(t *testing.T) {
	a := NewAuthorizer(DefaultPolicy)

	tests := []struct {
		name    string
		ctx     context.Context
		op      Operation
		allowed bool
	}{
		{"admin writes", asAdmin, OpProductSave, true},
		{"moderator writes", asModerator, OpCategoryDelete, true},
		{"user cannot write", asUser, OpProductDelete, false},
		{"user reads", asUser, OpProductFilter, true},
		{"anonymous cannot read", context.Background(), OpProductFindById, false},
		{"anonymous may log in", context.Background(), OpAuthLogin, true},
		{"only admin lists users", asModerator, OpUserFindAll, false},
		{"unknown operation denied", asAdmin, Operation("product.purge"), false},
		{"any held role counts", as(entity.RoleUser, entity.RoleModerator), OpProductUpdate, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Authorize(tt.ctx, tt.op)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperror.ErrAuthorization)
		})
	}
}

func TestAuthorizationErrorNamesRoles(t *testing.T) {
	err := NewAuthorizer(DefaultPolicy).Authorize(asUser, OpProductSave)

	var denied *apperror.AuthorizationError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, "product.save", denied.Operation)
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_MODERATOR"}, denied.Required)
}

func TestObserveSkipsBodyWhenDenied(t *testing.T) {
	ran := false
	_, err := observe(asUser, testObserver("Test"), OpProductDelete, nil, func() (int, error) {
		ran = true
		return 1, nil
	})

	assert.ErrorIs(t, err, apperror.ErrAuthorization)
	assert.False(t, ran)
}

func TestStoreErrKeepsTaxonomy(t *testing.T) {
	notFound := apperror.NewNotFoundError("product", 1)
	assert.Same(t, notFound, storeErr("find", notFound))

	wrapped := storeErr("find", errStoreDown)
	assert.ErrorIs(t, wrapped, apperror.ErrPersistence)
	assert.ErrorIs(t, wrapped, errStoreDown)

	assert.NoError(t, storeErr("find", nil))
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, "ok", outcomeOf(nil))
	assert.Equal(t, "conflict", outcomeOf(&apperror.ConcurrentModificationError{}))
	assert.Equal(t, "persistence", outcomeOf(apperror.NewPersistenceError("x", errStoreDown)))
	assert.Equal(t, "error", outcomeOf(errors.New("boom")))
}
