package mapper

import (
	"catalog-be/internal/entity"
	"catalog-be/internal/model"
)

type CategoryModelMapper struct {
	products *ProductModelMapper
}

func NewCategoryModelMapper() *CategoryModelMapper {
	return &CategoryModelMapper{products: NewProductModelMapper()}
}

func (m *CategoryModelMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	products := make([]*entity.Product, 0, len(c.Products))
	for i := range c.Products {
		products = append(products, m.products.ToEntity(&c.Products[i]))
	}
	return &entity.Category{
		Id:          idPtr(c.Id),
		Name:        c.Name,
		Description: c.Description,
		Enabled:     c.Enabled,
		// rows are written through ParseCategoryType, so the value is trusted here
		Type:      entity.CategoryType(c.CategoryType),
		Products:  products,
		Version:   c.Version,
		CreatedAt: c.CreatedAt,
		UpdatedAt: timePtr(c.UpdatedAt),
	}
}

func (m *CategoryModelMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	products := make([]model.Product, 0, len(c.Products))
	for _, p := range c.Products {
		if p == nil {
			continue
		}
		products = append(products, *m.products.ToModel(p))
	}
	return &model.Category{
		Id:           idValue(c.Id),
		Name:         c.Name,
		Description:  c.Description,
		Enabled:      c.Enabled,
		CategoryType: c.Type.String(),
		Products:     products,
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    timeValue(c.UpdatedAt),
	}
}

func (m *CategoryModelMapper) ToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, c := range categories {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
