package dto

import (
	"time"

	"catalog-be/internal/pkg/serverutils"
)

// ProductDTO is the transfer form of entity.Product. Amounts travel as
// decimal strings so that no precision is lost in JSON.
type ProductDTO struct {
	Id          *int64     `json:"id,omitempty"`
	Name        string     `json:"name" validate:"required,max=80"`
	Description string     `json:"description" validate:"max=255"`
	Quantity    int64      `json:"quantity" validate:"gte=0"`
	UnitPrice   string     `json:"unit_price" validate:"required,numeric"`
	Price       string     `json:"price,omitempty"`
	IsActive    bool       `json:"is_active"`
	ImageURL    *string    `json:"image_url,omitempty"`
	CategoryId  *int64     `json:"category_id,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func (d *ProductDTO) Validate() error {
	return serverutils.ValidateRequest(d)
}

type ProductDTOBuilder struct {
	dto ProductDTO
}

func NewProductDTOBuilder() *ProductDTOBuilder {
	return &ProductDTOBuilder{}
}

func (b *ProductDTOBuilder) Id(id *int64) *ProductDTOBuilder {
	b.dto.Id = id
	return b
}

func (b *ProductDTOBuilder) Name(name string) *ProductDTOBuilder {
	b.dto.Name = name
	return b
}

func (b *ProductDTOBuilder) Description(description string) *ProductDTOBuilder {
	b.dto.Description = description
	return b
}

func (b *ProductDTOBuilder) Quantity(quantity int64) *ProductDTOBuilder {
	b.dto.Quantity = quantity
	return b
}

func (b *ProductDTOBuilder) UnitPrice(unitPrice string) *ProductDTOBuilder {
	b.dto.UnitPrice = unitPrice
	return b
}

func (b *ProductDTOBuilder) Price(price string) *ProductDTOBuilder {
	b.dto.Price = price
	return b
}

func (b *ProductDTOBuilder) IsActive(active bool) *ProductDTOBuilder {
	b.dto.IsActive = active
	return b
}

func (b *ProductDTOBuilder) ImageURL(url *string) *ProductDTOBuilder {
	b.dto.ImageURL = url
	return b
}

func (b *ProductDTOBuilder) CategoryId(id *int64) *ProductDTOBuilder {
	b.dto.CategoryId = id
	return b
}

func (b *ProductDTOBuilder) Timestamps(createdAt time.Time, updatedAt *time.Time) *ProductDTOBuilder {
	if !createdAt.IsZero() {
		b.dto.CreatedAt = &createdAt
	}
	b.dto.UpdatedAt = updatedAt
	return b
}

// Build returns a copy of the accumulated fields without validating them.
func (b *ProductDTOBuilder) Build() *ProductDTO {
	out := b.dto
	return &out
}

// BuildValid is Build followed by Validate.
func (b *ProductDTOBuilder) BuildValid() (*ProductDTO, error) {
	out := b.Build()
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
