package contract

import (
	"context"

	"catalog-be/internal/entity"
	"catalog-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// Update writes the product only if its stored version still equals
	// product.Version, then bumps the version.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
