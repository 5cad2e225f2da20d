package unitofwork

import (
	"context"

	"catalog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	CategoryRepository() contract.CategoryRepository
	UserRepository() contract.UserRepository
}
