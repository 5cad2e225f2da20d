package mapper

import (
	"errors"
	"strconv"

	"catalog-be/internal/apperror"
	"catalog-be/internal/dto"
	"catalog-be/internal/entity"

	"github.com/shopspring/decimal"
)

type ProductMapper struct {
	*GenericObjectMapper[entity.Product, dto.ProductDTO]
}

func NewProductMapper() *ProductMapper {
	m := &ProductMapper{}
	m.GenericObjectMapper = NewGenericObjectMapper(m.toEntity, m.toDTO)
	return m
}

func (m *ProductMapper) ToProducts(dtos []*dto.ProductDTO) ([]*entity.Product, error) {
	return m.ToSourceObjectList(dtos)
}

func (m *ProductMapper) ToProductDtos(products []*entity.Product) ([]*dto.ProductDTO, error) {
	return m.ToDestObjectList(products)
}

func (m *ProductMapper) toEntity(d *dto.ProductDTO) (*entity.Product, error) {
	unitPrice, err := parseAmount("unit_price", d.UnitPrice)
	if err != nil {
		return nil, err
	}
	price, err := parseAmount("price", d.Price)
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		Id:          copyId(d.Id),
		Name:        d.Name,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   unitPrice,
		Price:       price,
		IsActive:    d.IsActive,
		ImageURL:    copyString(d.ImageURL),
		CategoryId:  copyId(d.CategoryId),
	}, nil
}

func (m *ProductMapper) toDTO(p *entity.Product) (*dto.ProductDTO, error) {
	return dto.NewProductDTOBuilder().
		Id(copyId(p.Id)).
		Name(p.Name).
		Description(p.Description).
		Quantity(p.Quantity).
		UnitPrice(formatAmount(p.UnitPrice)).
		Price(formatAmount(p.Price)).
		IsActive(p.IsActive).
		ImageURL(copyString(p.ImageURL)).
		CategoryId(copyId(p.CategoryId)).
		Timestamps(p.CreatedAt, p.UpdatedAt).
		Build(), nil
}

// ProductKey is the identity used when a product list is treated as a set:
// the id once persisted, the unique name before that.
func ProductKey(p *entity.Product) string {
	if p.Id != nil {
		return "id:" + strconv.FormatInt(*p.Id, 10)
	}
	return "name:" + p.Name
}

// amountScale matches the numeric(19,2) amount columns.
const amountScale = 2

var errAmountScale = errors.New("more than 2 decimal places")

// parseAmount rejects amounts the store would round. Trailing zeros past the
// scale are accepted, so "10.500" parses while "10.005" does not.
func parseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err == nil && !d.Equal(d.Round(amountScale)) {
		err = errAmountScale
	}
	if err != nil {
		return decimal.Zero, &apperror.MappingError{From: "dto.ProductDTO", To: "entity.Product", Field: field, Err: err}
	}
	return d, nil
}

// formatAmount keeps the scale the amount was written with, so "10.00"
// survives a round trip as "10.00" and not "10".
func formatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

func copyId(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
