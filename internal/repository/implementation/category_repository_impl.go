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
	"gorm.io/gorm/clause"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryModelMapper
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryModelMapper(),
	}
}

// Create inserts the category and then the products it carries as new rows,
// linked to the fresh category id. Ids carried by the products are ignored so
// the serial sequence stays authoritative.
func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *entity.Category) error {
	row := r.mapper.ToModel(category)
	products := row.Products
	row.Products = nil

	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(row).Error; err != nil {
		return err
	}
	for i := range products {
		products[i].Id = 0
		products[i].Version = 0
		products[i].CategoryId = &row.Id
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	row.Products = products

	*category = *r.mapper.ToEntity(row)
	return nil
}

// Update writes scalar fields only; the product set is managed through the
// product repository.
func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *entity.Category) error {
	row := r.mapper.ToModel(category)
	now := time.Now()

	result := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ? AND optlock = ?", row.Id, row.Version).
		Updates(map[string]interface{}{
			"name":          row.Name,
			"description":   row.Description,
			"enabled":       row.Enabled,
			"category_type": row.CategoryType,
			"optlock":       row.Version + 1,
			"updated_time":  now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staleOrMissing(ctx, r.db, &model.Category{}, "category", row.Id, row.Version)
	}

	category.Version = row.Version + 1
	category.UpdatedAt = &now
	return nil
}

// Delete detaches the products of the category before removing it.
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.Product{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Category{}).Error
}

func (r *CategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var row model.Category
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&row), nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var rows []*model.Category
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByIdAsc), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(rows), nil
}

func (r *CategoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Category{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
