package mapper

import (
	"time"

	"catalog-be/internal/entity"
	"catalog-be/internal/model"
)

// ProductModelMapper converts between the domain product and its table row.
type ProductModelMapper struct{}

func NewProductModelMapper() *ProductModelMapper {
	return &ProductModelMapper{}
}

func (m *ProductModelMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:          idPtr(p.Id),
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Price:       p.Price,
		IsActive:    p.IsActive,
		ImageURL:    p.ImageURL,
		CategoryId:  p.CategoryId,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   timePtr(p.UpdatedAt),
	}
}

func (m *ProductModelMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:          idValue(p.Id),
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Price:       p.Price,
		IsActive:    p.IsActive,
		ImageURL:    p.ImageURL,
		CategoryId:  p.CategoryId,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   timeValue(p.UpdatedAt),
	}
}

func (m *ProductModelMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProductModelMapper) ToModels(products []*entity.Product) []*model.Product {
	models := make([]*model.Product, len(products))
	for i, p := range products {
		models[i] = m.ToModel(p)
	}
	return models
}

func idPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func idValue(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
