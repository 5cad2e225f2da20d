package implementation

import (
	"context"
	"errors"
	"time"

	"catalog-be/internal/entity"
	"catalog-be/internal/mapper"
	"catalog-be/internal/model"
	"catalog-be/internal/repository/contract"
	"catalog-be/internal/repository/scope"
	"catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductModelMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductModelMapper(),
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	row := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(row)
	return nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	row := r.mapper.ToModel(product)
	now := time.Now()

	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND optlock = ?", row.Id, row.Version).
		Updates(map[string]interface{}{
			"name":         row.Name,
			"description":  row.Description,
			"quantity":     row.Quantity,
			"unit_price":   row.UnitPrice,
			"price":        row.Price,
			"is_active":    row.IsActive,
			"image_url":    row.ImageURL,
			"category_id":  row.CategoryId,
			"optlock":      row.Version + 1,
			"updated_time": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staleOrMissing(ctx, r.db, &model.Product{}, "product", row.Id, row.Version)
	}

	product.Version = row.Version + 1
	product.UpdatedAt = &now
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}).Error
}

func (r *ProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var row model.Product
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&row), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var rows []*model.Product
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByIdAsc), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(rows), nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
