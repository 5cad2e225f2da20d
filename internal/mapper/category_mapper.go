package mapper

import (
	"catalog-be/internal/dto"
	"catalog-be/internal/entity"
	"catalog-be/internal/pkg/serverutils"
)

// CategoryMapper adds what field copying cannot infer: the nested product set
// and the category type enum.
type CategoryMapper struct {
	*GenericObjectMapper[entity.Category, dto.CategoryDTO]
	productMapper *ProductMapper
}

func NewCategoryMapper(productMapper *ProductMapper) *CategoryMapper {
	m := &CategoryMapper{productMapper: productMapper}
	m.GenericObjectMapper = NewGenericObjectMapper(m.toEntity, m.toDTO)
	return m
}

func (m *CategoryMapper) ToCategories(dtos []*dto.CategoryDTO) ([]*entity.Category, error) {
	return m.ToSourceObjectList(dtos)
}

func (m *CategoryMapper) ToCategoryDtos(categories []*entity.Category) ([]*dto.CategoryDTO, error) {
	return m.ToDestObjectList(categories)
}

func (m *CategoryMapper) toEntity(d *dto.CategoryDTO) (*entity.Category, error) {
	// a nil product list flows through and comes back as an empty set
	products, err := m.productMapper.ToProducts(d.Products)
	if err != nil {
		return nil, err
	}

	categoryType, err := entity.ParseCategoryType(d.Type)
	if err != nil {
		return nil, err
	}

	enabled := false
	if d.Enabled != nil {
		enabled = *d.Enabled
	}

	return &entity.Category{
		Id:          copyId(d.Id),
		Name:        d.Name,
		Description: d.Description,
		Enabled:     enabled,
		Type:        categoryType,
		Products:    serverutils.DistinctBy(products, ProductKey),
	}, nil
}

func (m *CategoryMapper) toDTO(c *entity.Category) (*dto.CategoryDTO, error) {
	products, err := m.productMapper.ToProductDtos(serverutils.DistinctBy(c.Products, ProductKey))
	if err != nil {
		return nil, err
	}

	return dto.NewCategoryDTOBuilder().
		Id(copyId(c.Id)).
		Name(c.Name).
		Description(c.Description).
		Enabled(c.Enabled).
		Type(c.Type.String()).
		Products(products).
		Timestamps(c.CreatedAt, c.UpdatedAt).
		Build(), nil
}
